package model

import (
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project Status
type ProjectStatus string

const (
	ProjectStatusEmCurso   ProjectStatus = "em_curso"
	ProjectStatusConcluido ProjectStatus = "concluido"
	ProjectStatusVenda     ProjectStatus = "em_venda"
)

type Project struct {
	gorm.Model
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Location    string         `json:"location"`
	Status      ProjectStatus  `json:"status" gorm:"default:'em_curso'"`
	Typology    string         `json:"typology"`
	AreaSqM     int            `json:"areaSqM"`
	CoverImage  string         `json:"coverImage"`
	Gallery     datatypes.JSON `json:"gallery"`
	Published   bool           `json:"published" gorm:"default:false;index"`
	OrderIndex  int            `json:"orderIndex" gorm:"default:0"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		base := slug.Make(p.Title)

		var count int64
		tx.Model(&Project{}).Where("slug = ?", base).Count(&count)
		if count > 0 {
			base = base + "-" + p.CreatedAt.Format("20060102")
		}

		p.Slug = base
	}
	return nil
}
