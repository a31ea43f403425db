package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Pipeline Stages
type PipelineStage string

const (
	StageNovo        PipelineStage = "novo"
	StageQualificado PipelineStage = "qualificado"
	StageVisita      PipelineStage = "visita"
	StageProposta    PipelineStage = "proposta"
	StageFechado     PipelineStage = "fechado"
	StagePerdido     PipelineStage = "perdido"
)

func (s PipelineStage) Valid() bool {
	switch s {
	case StageNovo, StageQualificado, StageVisita, StageProposta, StageFechado, StagePerdido:
		return true
	}
	return false
}

type Contact struct {
	ID               string         `json:"id" gorm:"primaryKey;size:36"`
	Name             string         `json:"name"`
	Email            string         `json:"email" gorm:"index"`
	Phone            string         `json:"phone"`
	Interest         string         `json:"interest"`
	Message          string         `json:"message" gorm:"type:text"`
	PipelineStage    PipelineStage  `json:"pipelineStage" gorm:"default:'novo';index"`
	Owner            string         `json:"owner"`
	Notes            string         `json:"notes" gorm:"type:text"`
	FollowUpAt       *time.Time     `json:"followUpAt"`
	DesiredLocations datatypes.JSON `json:"desiredLocations"`
	MaxBudget        string         `json:"maxBudget"`
	Typology         string         `json:"typology"`
	Source           string         `json:"source"`
	LastActivityAt   time.Time      `json:"lastActivityAt" gorm:"autoCreateTime"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.PipelineStage == "" {
		c.PipelineStage = StageNovo
	}
	return nil
}

// AfterFind garante que registos antigos nunca saem sem estágio.
func (c *Contact) AfterFind(tx *gorm.DB) error {
	if c.PipelineStage == "" {
		c.PipelineStage = StageNovo
	}
	return nil
}
