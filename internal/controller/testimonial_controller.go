package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"reabita_backend/internal/middleware"
	"reabita_backend/internal/model"
)

type TestimonialController struct {
	db *gorm.DB
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{db: db}
}

type TestimonialInput struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	Quote      *string `json:"quote"`
	AvatarURL  *string `json:"avatarUrl"`
	Rating     *int    `json:"rating"`
	Published  *bool   `json:"published"`
	OrderIndex *int    `json:"orderIndex"`
}

func (t *TestimonialController) List(c *fiber.Ctx) error {
	query := t.db.Order("order_index asc, created_at desc")
	if !middleware.IsAdmin(c) {
		query = query.Where("published = ?", true)
	}

	var testimonials []model.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if middleware.IsAdmin(c) {
		return c.JSON(fiber.Map{
			"testimonials": testimonials,
			"count":        len(testimonials),
		})
	}
	return c.JSON(testimonials)
}

func (t *TestimonialController) GetOne(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	err := t.db.First(&testimonial, c.Params("id")).Error

	if err != nil || (!testimonial.Published && !middleware.IsAdmin(c)) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testemunho não encontrado",
		})
	}

	return c.JSON(testimonial)
}

func (t *TestimonialController) Create(c *fiber.Ctx) error {
	input := new(TestimonialInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	testimonial := model.Testimonial{}
	applyTestimonialInput(&testimonial, input)

	if err := t.db.Create(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(testimonial)
}

func (t *TestimonialController) Update(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	if err := t.db.First(&testimonial, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testemunho não encontrado",
		})
	}

	input := new(TestimonialInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	applyTestimonialInput(&testimonial, input)

	if err := t.db.Save(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(testimonial)
}

func (t *TestimonialController) Delete(c *fiber.Ctx) error {
	var testimonial model.Testimonial
	if err := t.db.First(&testimonial, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Testemunho não encontrado",
		})
	}

	if err := t.db.Delete(&testimonial).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func applyTestimonialInput(testimonial *model.Testimonial, input *TestimonialInput) {
	if input.Name != nil {
		testimonial.Name = *input.Name
	}
	if input.Role != nil {
		testimonial.Role = *input.Role
	}
	if input.Quote != nil {
		testimonial.Quote = *input.Quote
	}
	if input.AvatarURL != nil {
		testimonial.AvatarURL = *input.AvatarURL
	}
	if input.Rating != nil {
		testimonial.Rating = *input.Rating
	}
	if input.Published != nil {
		testimonial.Published = *input.Published
	}
	if input.OrderIndex != nil {
		testimonial.OrderIndex = *input.OrderIndex
	}
}
