package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"

	"reabita_backend/pkg/utils/storage"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// Upload recebe uma imagem multipart do painel de administração e
// devolve o URL público no bucket.
func (u *UploadController) Upload(c *fiber.Ctx) error {
	if !storage.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Armazenamento de media não configurado",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nenhum ficheiro enviado",
		})
	}

	folder := c.FormValue("folder", "media")
	folder = slug.Make(folder)

	url, err := storage.UploadImage(file, folder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}

type DeleteMediaInput struct {
	URL string `json:"url"`
}

func (u *UploadController) Delete(c *fiber.Ctx) error {
	if !storage.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Armazenamento de media não configurado",
		})
	}

	input := new(DeleteMediaInput)
	if err := c.BodyParser(input); err != nil || input.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "URL da imagem em falta",
		})
	}

	if err := storage.DeleteImage(input.URL); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
