package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reabita_backend/internal/middleware"
	"reabita_backend/internal/model"
)

// Insights e testemunhos seguem a mesma regra de visibilidade dos
// projetos; aqui cobre-se só o filtro published e a contagem de admin.

func TestInsightVisibilitySplit(t *testing.T) {
	db := newTestDB(t)
	i := NewInsightController(db)

	app := newTestApp()
	insights := app.Group("/insights")
	insights.Get("/", i.List)
	insights.Get("/:id", i.GetOne)

	require.NoError(t, db.Create(&model.Insight{Title: "Publicado", Published: true}).Error)
	require.NoError(t, db.Create(&model.Insight{Title: "Rascunho", Published: false}).Error)

	resp := doJSON(t, app, "GET", "/insights", nil, false)
	var public []model.Insight
	decodeBody(t, resp, &public)
	assert.Len(t, public, 1)
	assert.Equal(t, "Publicado", public[0].Title)

	resp = doJSON(t, app, "GET", "/insights", nil, true)
	var adminBody struct {
		Insights []model.Insight `json:"insights"`
		Count    int             `json:"count"`
	}
	decodeBody(t, resp, &adminBody)
	assert.Equal(t, 2, adminBody.Count)

	resp = doJSON(t, app, "GET", "/insights/rascunho", nil, false)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTestimonialVisibilitySplit(t *testing.T) {
	db := newTestDB(t)
	tc := NewTestimonialController(db)

	app := newTestApp()
	testimonials := app.Group("/testimonials")
	testimonials.Get("/", tc.List)
	testimonials.Post("/", middleware.RequireAdmin(), tc.Create)

	require.NoError(t, db.Create(&model.Testimonial{Name: "Marta", Quote: "Excelente", Published: true}).Error)
	require.NoError(t, db.Create(&model.Testimonial{Name: "João", Quote: "Pendente", Published: false}).Error)

	resp := doJSON(t, app, "GET", "/testimonials", nil, false)
	var public []model.Testimonial
	decodeBody(t, resp, &public)
	require.Len(t, public, 1)
	assert.True(t, public[0].Published)

	resp = doJSON(t, app, "GET", "/testimonials", nil, true)
	var adminBody struct {
		Testimonials []model.Testimonial `json:"testimonials"`
		Count        int                 `json:"count"`
	}
	decodeBody(t, resp, &adminBody)
	assert.Equal(t, 2, adminBody.Count)

	resp = doJSON(t, app, "POST", "/testimonials", map[string]interface{}{
		"name":  "Novo",
		"quote": "Muito bom",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
