package controller

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"reabita_backend/internal/model"
	"reabita_backend/pkg/email"
	"reabita_backend/pkg/validation"
)

type ContactController struct {
	db       *gorm.DB
	mailer   *email.EmailService
	notifyTo string
}

func NewContactController(db *gorm.DB, mailer *email.EmailService, notifyTo string) *ContactController {
	return &ContactController{db: db, mailer: mailer, notifyTo: notifyTo}
}

type ContactInput struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Interest         string   `json:"interest"`
	Message          string   `json:"message"`
	DesiredLocations []string `json:"desiredLocations"`
	MaxBudget        string   `json:"maxBudget"`
	Typology         string   `json:"typology"`
}

// Create recebe o formulário público de contacto.
func (ct *ContactController) Create(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	if err := validation.ValidateContact(validation.ContactInput{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Interest: input.Interest,
		Message:  input.Message,
	}); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	contact := model.Contact{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Interest:      input.Interest,
		Message:       input.Message,
		MaxBudget:     input.MaxBudget,
		Typology:      input.Typology,
		Source:        "site",
		PipelineStage: model.StageNovo,
	}

	if len(input.DesiredLocations) > 0 {
		raw, _ := json.Marshal(input.DesiredLocations)
		contact.DesiredLocations = raw
	}

	if err := ct.db.Create(&contact).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if ct.mailer != nil {
		err := ct.mailer.SendContactNotification(ct.notifyTo, email.ContactNotificationData{
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			Interest:   input.Interest,
			Message:    input.Message,
			ReceivedAt: contact.CreatedAt,
		})
		if err != nil {
			log.Printf("Could not send contact notification email: %v", err)
		}
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Mensagem enviada com sucesso. Entraremos em contacto em breve.",
	})
}

// List devolve todos os contactos, do mais recente para o mais antigo.
func (ct *ContactController) List(c *fiber.Ctx) error {
	var contacts []model.Contact
	if err := ct.db.Order("created_at desc").Find(&contacts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"contacts": contacts,
		"count":    len(contacts),
	})
}

type ContactPatchInput struct {
	PipelineStage    *string    `json:"pipelineStage"`
	Owner            *string    `json:"owner"`
	Notes            *string    `json:"notes"`
	FollowUpAt       *time.Time `json:"followUpAt"`
	DesiredLocations *[]string  `json:"desiredLocations"`
	MaxBudget        *string    `json:"maxBudget"`
	Typology         *string    `json:"typology"`
	Interest         *string    `json:"interest"`
	Phone            *string    `json:"phone"`
}

// Update aplica um patch parcial ao contacto. Só os campos da lista
// permitida são tocados; tudo o resto mantém o valor guardado.
func (ct *ContactController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID do contacto em falta",
		})
	}

	var contact model.Contact
	if err := ct.db.First(&contact, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Contacto não encontrado",
		})
	}

	input := new(ContactPatchInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	updates := map[string]interface{}{}

	if input.PipelineStage != nil {
		stage := model.PipelineStage(*input.PipelineStage)
		if stage == "" {
			stage = model.StageNovo
		}
		if !stage.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Estágio de pipeline inválido",
				"valid_stages": []string{
					string(model.StageNovo),
					string(model.StageQualificado),
					string(model.StageVisita),
					string(model.StageProposta),
					string(model.StageFechado),
					string(model.StagePerdido),
				},
			})
		}
		updates["pipeline_stage"] = stage
	}
	if input.Owner != nil {
		updates["owner"] = *input.Owner
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if input.FollowUpAt != nil {
		updates["follow_up_at"] = *input.FollowUpAt
	}
	if input.DesiredLocations != nil {
		raw, _ := json.Marshal(*input.DesiredLocations)
		updates["desired_locations"] = raw
	}
	if input.MaxBudget != nil {
		updates["max_budget"] = *input.MaxBudget
	}
	if input.Typology != nil {
		updates["typology"] = *input.Typology
	}
	if input.Interest != nil {
		updates["interest"] = *input.Interest
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}

	updates["last_activity_at"] = time.Now()

	if err := ct.db.Model(&contact).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ct.db.First(&contact, "id = ?", id)

	return c.JSON(fiber.Map{
		"success": true,
		"contact": contact,
	})
}
