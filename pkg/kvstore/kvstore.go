package kvstore

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"reabita_backend/internal/model"
)

// Store é o adaptador chave-valor sobre a tabela kv_entries.
// Todas as operações são escritas/leituras duráveis; não há cache local.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Set faz upsert do valor na chave, substituindo o que lá estiver.
func (s *Store) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := model.KVEntry{Key: key, Value: raw}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&entry).Error
}

// Get devolve o valor guardado. Chave ausente não é erro: devolve
// found=false. Só falhas de transporte/armazenamento produzem erro.
func (s *Store) Get(key string, out interface{}) (bool, error) {
	var entry model.KVEntry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if out != nil {
		if err := json.Unmarshal(entry.Value, out); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Delete remove a entrada se existir. Apagar chave inexistente não é erro.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&model.KVEntry{}, "key = ?", key).Error
}

// ScanByPrefix devolve todas as entradas cuja chave começa pelo prefixo.
// A ordem é a de inserção; ordenações específicas ficam a cargo de quem chama.
func (s *Store) ScanByPrefix(prefix string) ([]model.KVEntry, error) {
	var entries []model.KVEntry
	err := s.db.Where("key LIKE ?", prefix+"%").
		Order("created_at asc").
		Find(&entries).Error
	return entries, err
}
