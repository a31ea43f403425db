package seed

import (
	"log"

	"gorm.io/gorm"

	"reabita_backend/internal/model"
)

// SeedDemoContent cria conteúdo publicado de demonstração num ambiente
// vazio. Só corre quando SEED_DEMO=true e as tabelas estão vazias.
func SeedDemoContent(db *gorm.DB) {
	var count int64

	db.Model(&model.Project{}).Count(&count)
	if count == 0 {
		projects := []model.Project{
			{
				Title:       "Edifício Graça 22",
				Description: "Reabilitação integral de um edifício pombalino na Graça, com 6 frações T1 e T2.",
				Location:    "Graça, Lisboa",
				Status:      model.ProjectStatusConcluido,
				Typology:    "T1-T2",
				AreaSqM:     540,
				Published:   true,
				OrderIndex:  1,
			},
			{
				Title:       "Casa do Bonfim",
				Description: "Moradia do século XIX no Bonfim convertida em 4 apartamentos com logradouro.",
				Location:    "Bonfim, Porto",
				Status:      model.ProjectStatusVenda,
				Typology:    "T2-T3",
				AreaSqM:     380,
				Published:   true,
				OrderIndex:  2,
			},
		}
		for i := range projects {
			if err := db.Create(&projects[i]).Error; err != nil {
				log.Printf("Seed: could not create project: %v", err)
			}
		}
		log.Printf("Seed: created %d demo projects", len(projects))
	}

	db.Model(&model.Insight{}).Count(&count)
	if count == 0 {
		insights := []model.Insight{
			{
				Title:     "Guia do investidor: reabilitar para arrendar em 2026",
				Excerpt:   "O que mudou nos incentivos à reabilitação urbana e onde ainda há margem.",
				Category:  "investimento",
				Published: true,
			},
		}
		for i := range insights {
			if err := db.Create(&insights[i]).Error; err != nil {
				log.Printf("Seed: could not create insight: %v", err)
			}
		}
	}

	db.Model(&model.Testimonial{}).Count(&count)
	if count == 0 {
		testimonials := []model.Testimonial{
			{
				Name:      "Marta Figueiredo",
				Role:      "Investidora",
				Quote:     "Acompanharam a obra do princípio ao fim e o retorno superou o previsto.",
				Rating:    5,
				Published: true,
			},
		}
		for i := range testimonials {
			if err := db.Create(&testimonials[i]).Error; err != nil {
				log.Printf("Seed: could not create testimonial: %v", err)
			}
		}
	}
}
