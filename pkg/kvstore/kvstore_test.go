package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reabita_backend/internal/model"
)

func newTestStore(t *testing.T) *Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.KVEntry{}))
	return New(db)
}

type payload struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := payload{Name: "Ana", Tags: []string{"a", "b"}, Count: 3}
	require.NoError(t, store.Set("contact:1", in))

	var out payload
	found, err := store.Get("contact:1", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestSetOverwritesExistingValue(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("contact:1", payload{Name: "Ana"}))
	require.NoError(t, store.Set("contact:1", payload{Name: "Rui"}))

	var out payload
	found, err := store.Get("contact:1", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Rui", out.Name)
}

func TestGetMissingKeyIsNotAnError(t *testing.T) {
	store := newTestStore(t)

	var out payload
	found, err := store.Get("contact:missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteThenGetReturnsAbsent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("contact:1", payload{Name: "Ana"}))
	require.NoError(t, store.Delete("contact:1"))

	found, err := store.Get("contact:1", nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteMissingKeyIsNotAnError(t *testing.T) {
	store := newTestStore(t)
	assert.NoError(t, store.Delete("contact:nonexistent"))
}

func TestScanByPrefixReturnsOnlyMatchingKeys(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("newsletter:a@b.com", payload{Name: "A"}))
	require.NoError(t, store.Set("newsletter:c@d.com", payload{Name: "C"}))
	require.NoError(t, store.Set("schedule:pending:x", payload{Name: "X"}))

	entries, err := store.ScanByPrefix("newsletter:")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Contains(t, entry.Key, "newsletter:")
	}
}
