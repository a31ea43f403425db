package controller

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reabita_backend/internal/model"
)

func leadApp(t *testing.T) (*gorm.DB, *fiber.App) {
	db := newTestDB(t)
	l := NewLeadController(db, nil, "geral@reabita.pt")

	app := newTestApp()
	app.Post("/leads", l.Create)

	return db, app
}

func TestCreateLeadStampsQualifiedStage(t *testing.T) {
	db, app := leadApp(t)

	resp := doJSON(t, app, "POST", "/leads", map[string]string{
		"name":         "Rui",
		"email":        "rui@example.com",
		"phone":        "913333333",
		"projectTitle": "Casa do Bonfim",
	}, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var contact model.Contact
	require.NoError(t, db.First(&contact, "email = ?", "rui@example.com").Error)
	assert.Equal(t, model.StageQualificado, contact.PipelineStage)
}

func TestCreateLeadSynthesizesDefaultMessage(t *testing.T) {
	db, app := leadApp(t)

	doJSON(t, app, "POST", "/leads", map[string]string{
		"name":         "Rui",
		"email":        "rui@example.com",
		"phone":        "913333333",
		"projectTitle": "Casa do Bonfim",
	}, false)

	var contact model.Contact
	require.NoError(t, db.First(&contact, "email = ?", "rui@example.com").Error)
	assert.Contains(t, contact.Message, "Casa do Bonfim")
}

func TestCreateLeadKeepsCallerMessage(t *testing.T) {
	db, app := leadApp(t)

	doJSON(t, app, "POST", "/leads", map[string]string{
		"name":    "Rui",
		"email":   "rui@example.com",
		"phone":   "913333333",
		"message": "Quero visitar no sábado",
	}, false)

	var contact model.Contact
	require.NoError(t, db.First(&contact, "email = ?", "rui@example.com").Error)
	assert.Equal(t, "Quero visitar no sábado", contact.Message)
}

func TestCreateLeadValidatesInput(t *testing.T) {
	_, app := leadApp(t)

	resp := doJSON(t, app, "POST", "/leads", map[string]string{
		"name":  "Rui",
		"email": "invalid",
		"phone": "913333333",
	}, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/leads", map[string]string{
		"name":  "Rui",
		"email": "rui@example.com",
	}, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
