package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"reabita_backend/internal/model"
	"reabita_backend/pkg/calendar"
	"reabita_backend/pkg/kvstore"
	"reabita_backend/pkg/validation"
)

type ScheduleController struct {
	db  *gorm.DB
	kv  *kvstore.Store
	cal *calendar.Client
}

func NewScheduleController(db *gorm.DB, kv *kvstore.Store, cal *calendar.Client) *ScheduleController {
	return &ScheduleController{db: db, kv: kv, cal: cal}
}

type ScheduleMeetingInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	ProjectTitle string `json:"projectTitle"`
	Message      string `json:"message"`
}

// ScheduleMeeting marca a reunião no calendário externo e depois
// persiste o contacto local no estágio visita. A entrada pendente no
// armazenamento chave-valor cobre a janela entre as duas fases; o cron
// de reconciliação repõe contactos de marcações confirmadas que tenham
// ficado por gravar.
func (s *ScheduleController) ScheduleMeeting(c *fiber.Ctx) error {
	input := new(ScheduleMeetingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	required := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"phone", input.Phone},
		{"date", input.Date},
		{"time", input.Time},
	}
	for _, field := range required {
		if field.value == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Campo obrigatório em falta: %s", field.name),
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
			message = fmt.Sprintf("Visita agendada ao projeto %s (%s %s)", input.ProjectTitle, input.Date, input.Time)
		} else {
			message = fmt.Sprintf("Reunião agendada para %s às %s", input.Date, input.Time)
		}
	}

	idempotencyKey := uuid.NewString()
	pendingKey := model.SchedulePendingKeyPrefix + idempotencyKey

	pending := model.PendingBooking{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Date:         input.Date,
		Time:         input.Time,
		ProjectTitle: input.ProjectTitle,
		Message:      message,
		CreatedAt:    time.Now(),
	}

	if err := s.kv.Set(pendingKey, pending); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	booking, err := s.cal.ScheduleMeeting(calendar.BookingInput{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Date:           input.Date,
		Time:           input.Time,
		ProjectTitle:   input.ProjectTitle,
		Message:        message,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		// A marcação não aconteceu; a entrada pendente já não serve.
		s.kv.Delete(pendingKey)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	pending.EventID = booking.EventID
	if err := s.kv.Set(pendingKey, pending); err != nil {
		log.Printf("Could not mark booking %s as confirmed: %v", pendingKey, err)
	}

	contact := model.Contact{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Interest:      "visita",
		Message:       message,
		Source:        "agendamento",
		PipelineStage: model.StageVisita,
	}

	if err := s.db.Create(&contact).Error; err != nil {
		// O evento externo existe; a entrada pendente fica para o cron.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := s.kv.Delete(pendingKey); err != nil {
		log.Printf("Could not clear pending booking %s: %v", pendingKey, err)
	}

	return c.JSON(fiber.Map{
		"ok":        true,
		"eventId":   booking.EventID,
		"eventLink": booking.EventLink,
		"meetLink":  booking.MeetLink,
		"message":   "Reunião agendada com sucesso",
	})
}

// CalendarSlots reencaminha a consulta de horários livres ao webhook.
func (s *ScheduleController) CalendarSlots(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "startDate e endDate são obrigatórios",
		})
	}

	slots, err := s.cal.ListSlots(startDate, endDate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"slots": []calendar.Slot{},
			"count": 0,
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"slots": slots,
		"count": len(slots),
	})
}
