package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"reabita_backend/internal/middleware"
	"reabita_backend/internal/model"
)

type InsightController struct {
	db *gorm.DB
}

func NewInsightController(db *gorm.DB) *InsightController {
	return &InsightController{db: db}
}

type InsightInput struct {
	Title      *string `json:"title"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	Category   *string `json:"category"`
	CoverImage *string `json:"coverImage"`
	Published  *bool   `json:"published"`
	OrderIndex *int    `json:"orderIndex"`
}

func (i *InsightController) List(c *fiber.Ctx) error {
	query := i.db.Order("order_index asc, created_at desc")
	if !middleware.IsAdmin(c) {
		query = query.Where("published = ?", true)
	}

	var insights []model.Insight
	if err := query.Find(&insights).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if middleware.IsAdmin(c) {
		return c.JSON(fiber.Map{
			"insights": insights,
			"count":    len(insights),
		})
	}
	return c.JSON(insights)
}

func (i *InsightController) GetOne(c *fiber.Ctx) error {
	ref := c.Params("id")

	var insight model.Insight
	var err error
	if id, convErr := strconv.ParseUint(ref, 10, 32); convErr == nil {
		err = i.db.First(&insight, uint(id)).Error
	} else {
		err = i.db.First(&insight, "slug = ?", ref).Error
	}

	if err != nil || (!insight.Published && !middleware.IsAdmin(c)) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Artigo não encontrado",
		})
	}

	return c.JSON(insight)
}

func (i *InsightController) Create(c *fiber.Ctx) error {
	input := new(InsightInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	insight := model.Insight{}
	applyInsightInput(&insight, input)

	if err := i.db.Create(&insight).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(insight)
}

func (i *InsightController) Update(c *fiber.Ctx) error {
	var insight model.Insight
	if err := i.db.First(&insight, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Artigo não encontrado",
		})
	}

	input := new(InsightInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	applyInsightInput(&insight, input)

	if err := i.db.Save(&insight).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(insight)
}

func (i *InsightController) Delete(c *fiber.Ctx) error {
	var insight model.Insight
	if err := i.db.First(&insight, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Artigo não encontrado",
		})
	}

	if err := i.db.Delete(&insight).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func applyInsightInput(insight *model.Insight, input *InsightInput) {
	if input.Title != nil {
		insight.Title = *input.Title
	}
	if input.Excerpt != nil {
		insight.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		insight.Content = *input.Content
	}
	if input.Category != nil {
		insight.Category = *input.Category
	}
	if input.CoverImage != nil {
		insight.CoverImage = *input.CoverImage
	}
	if input.Published != nil {
		insight.Published = *input.Published
	}
	if input.OrderIndex != nil {
		insight.OrderIndex = *input.OrderIndex
	}
}
