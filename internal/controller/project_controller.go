package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"reabita_backend/internal/middleware"
	"reabita_backend/internal/model"
)

type ProjectController struct {
	db *gorm.DB
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{db: db}
}

type ProjectInput struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Location    *string         `json:"location"`
	Status      *string         `json:"status"`
	Typology    *string         `json:"typology"`
	AreaSqM     *int            `json:"areaSqM"`
	CoverImage  *string         `json:"coverImage"`
	Gallery     *datatypes.JSON `json:"gallery"`
	Published   *bool           `json:"published"`
	OrderIndex  *int            `json:"orderIndex"`
}

// List devolve o catálogo de projetos. O público só vê publicados e
// recebe o array direto; o admin recebe tudo com contagem.
func (p *ProjectController) List(c *fiber.Ctx) error {
	query := p.db.Order("order_index asc, created_at desc")
	if !middleware.IsAdmin(c) {
		query = query.Where("published = ?", true)
	}

	var projects []model.Project
	if err := query.Find(&projects).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if middleware.IsAdmin(c) {
		return c.JSON(fiber.Map{
			"projects": projects,
			"count":    len(projects),
		})
	}
	return c.JSON(projects)
}

// GetOne aceita o id numérico ou o slug do projeto.
func (p *ProjectController) GetOne(c *fiber.Ctx) error {
	ref := c.Params("id")

	var project model.Project
	var err error
	if id, convErr := strconv.ParseUint(ref, 10, 32); convErr == nil {
		err = p.db.First(&project, uint(id)).Error
	} else {
		err = p.db.First(&project, "slug = ?", ref).Error
	}

	if err != nil || (!project.Published && !middleware.IsAdmin(c)) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Projeto não encontrado",
		})
	}

	return c.JSON(project)
}

func (p *ProjectController) Create(c *fiber.Ctx) error {
	input := new(ProjectInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	project := model.Project{}
	applyProjectInput(&project, input)

	if err := p.db.Create(&project).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

func (p *ProjectController) Update(c *fiber.Ctx) error {
	var project model.Project
	if err := p.db.First(&project, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Projeto não encontrado",
		})
	}

	input := new(ProjectInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	applyProjectInput(&project, input)

	if err := p.db.Save(&project).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(project)
}

func (p *ProjectController) Delete(c *fiber.Ctx) error {
	var project model.Project
	if err := p.db.First(&project, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Projeto não encontrado",
		})
	}

	if err := p.db.Delete(&project).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func applyProjectInput(project *model.Project, input *ProjectInput) {
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Location != nil {
		project.Location = *input.Location
	}
	if input.Status != nil {
		project.Status = model.ProjectStatus(*input.Status)
	}
	if input.Typology != nil {
		project.Typology = *input.Typology
	}
	if input.AreaSqM != nil {
		project.AreaSqM = *input.AreaSqM
	}
	if input.CoverImage != nil {
		project.CoverImage = *input.CoverImage
	}
	if input.Gallery != nil {
		project.Gallery = *input.Gallery
	}
	if input.Published != nil {
		project.Published = *input.Published
	}
	if input.OrderIndex != nil {
		project.OrderIndex = *input.OrderIndex
	}
}
