package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"reabita_backend/internal/model"
	"reabita_backend/pkg/kvstore"
)

type StatsController struct {
	db *gorm.DB
	kv *kvstore.Store
}

func NewStatsController(db *gorm.DB, kv *kvstore.Store) *StatsController {
	return &StatsController{db: db, kv: kv}
}

type DashboardStats struct {
	TotalContacts    int64            `json:"totalContacts"`
	ContactsByStage  map[string]int64 `json:"contactsByStage"`
	ContactsLast7d   int64            `json:"contactsLast7d"`
	Subscribers      int              `json:"subscribers"`
	PublishedContent ContentCounts    `json:"publishedContent"`
	DraftContent     ContentCounts    `json:"draftContent"`
}

type ContentCounts struct {
	Projects     int64 `json:"projects"`
	Insights     int64 `json:"insights"`
	Testimonials int64 `json:"testimonials"`
}

// Dashboard devolve os números do painel de administração.
func (s *StatsController) Dashboard(c *fiber.Ctx) error {
	var stats DashboardStats
	stats.ContactsByStage = map[string]int64{}

	s.db.Model(&model.Contact{}).Count(&stats.TotalContacts)

	var byStage []struct {
		PipelineStage string
		Count         int64
	}
	s.db.Model(&model.Contact{}).
		Select("pipeline_stage, COUNT(*) as count").
		Group("pipeline_stage").
		Scan(&byStage)
	for _, row := range byStage {
		stats.ContactsByStage[row.PipelineStage] = row.Count
	}

	s.db.Model(&model.Contact{}).
		Where("created_at >= ?", time.Now().AddDate(0, 0, -7)).
		Count(&stats.ContactsLast7d)

	entries, err := s.kv.ScanByPrefix(model.NewsletterKeyPrefix)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	stats.Subscribers = len(entries)

	s.db.Model(&model.Project{}).Where("published = ?", true).Count(&stats.PublishedContent.Projects)
	s.db.Model(&model.Insight{}).Where("published = ?", true).Count(&stats.PublishedContent.Insights)
	s.db.Model(&model.Testimonial{}).Where("published = ?", true).Count(&stats.PublishedContent.Testimonials)

	s.db.Model(&model.Project{}).Where("published = ?", false).Count(&stats.DraftContent.Projects)
	s.db.Model(&model.Insight{}).Where("published = ?", false).Count(&stats.DraftContent.Insights)
	s.db.Model(&model.Testimonial{}).Where("published = ?", false).Count(&stats.DraftContent.Testimonials)

	return c.JSON(stats)
}
