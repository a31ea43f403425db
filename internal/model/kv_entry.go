package model

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry é o substrato chave-valor sobre a base relacional.
// As chaves são prefixadas por recurso (ex: "newsletter:", "schedule:pending:")
// para que um prefix scan emule uma coleção.
type KVEntry struct {
	Key       string         `json:"key" gorm:"primaryKey;size:255"`
	Value     datatypes.JSON `json:"value"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
