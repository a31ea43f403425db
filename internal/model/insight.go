package model

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Insight struct {
	gorm.Model
	Title      string `json:"title" gorm:"not null"`
	Slug       string `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt    string `json:"excerpt" gorm:"type:text"`
	Content    string `json:"content" gorm:"type:text"`
	Category   string `json:"category"`
	CoverImage string `json:"coverImage"`
	Published  bool   `json:"published" gorm:"default:false;index"`
	OrderIndex int    `json:"orderIndex" gorm:"default:0"`
}

func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.Slug == "" {
		base := slug.Make(i.Title)

		var count int64
		tx.Model(&Insight{}).Where("slug = ?", base).Count(&count)
		if count > 0 {
			base = base + "-" + i.CreatedAt.Format("20060102")
		}

		i.Slug = base
	}
	return nil
}
