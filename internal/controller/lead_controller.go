package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"reabita_backend/internal/model"
	"reabita_backend/pkg/email"
	"reabita_backend/pkg/validation"
)

type LeadController struct {
	db       *gorm.DB
	mailer   *email.EmailService
	notifyTo string
}

func NewLeadController(db *gorm.DB, mailer *email.EmailService, notifyTo string) *LeadController {
	return &LeadController{db: db, mailer: mailer, notifyTo: notifyTo}
}

type LeadInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProjectTitle string `json:"projectTitle"`
	Message      string `json:"message"`
}

// Create recebe o pedido de visita de uma página de projeto. Estes leads
// entram já qualificados e, sem mensagem, recebem uma mensagem padrão
// com o projeto de origem.
func (l *LeadController) Create(c *fiber.Ctx) error {
	input := new(LeadInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	required := map[string]string{
		"name":  input.Name,
		"email": input.Email,
		"phone": input.Phone,
	}
	for _, field := range []string{"name", "email", "phone"} {
		if required[field] == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Campo obrigatório em falta: %s", field),
			})
		}
	}
	if !validation.ValidEmail(input.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validation.ErrInvalidEmail.Error(),
		})
	}

	message := input.Message
	if message == "" {
		if input.ProjectTitle != "" {
			message = fmt.Sprintf("Pedido de informação sobre o projeto %s", input.ProjectTitle)
		} else {
			message = "Pedido de informação enviado a partir do site"
		}
	}

	contact := model.Contact{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Interest:      "projeto",
		Message:       message,
		Source:        "projeto",
		PipelineStage: model.StageQualificado,
	}

	if err := l.db.Create(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if l.mailer != nil {
		err := l.mailer.SendContactNotification(l.notifyTo, email.ContactNotificationData{
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			Interest:   "projeto",
			Message:    message,
			ReceivedAt: contact.CreatedAt,
		})
		if err != nil {
			log.Printf("Could not send lead notification email: %v", err)
		}
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Pedido recebido com sucesso. A nossa equipa vai entrar em contacto.",
	})
}
