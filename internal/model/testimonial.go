package model

import "gorm.io/gorm"

type Testimonial struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null"`
	Role       string `json:"role"`
	Quote      string `json:"quote" gorm:"type:text"`
	AvatarURL  string `json:"avatarUrl"`
	Rating     int    `json:"rating" gorm:"default:5"`
	Published  bool   `json:"published" gorm:"default:false;index"`
	OrderIndex int    `json:"orderIndex" gorm:"default:0"`
}
