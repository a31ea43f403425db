package controller

import (
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"reabita_backend/internal/model"
	"reabita_backend/pkg/email"
	"reabita_backend/pkg/kvstore"
	"reabita_backend/pkg/validation"
)

type NewsletterController struct {
	kv     *kvstore.Store
	mailer *email.EmailService
}

func NewNewsletterController(kv *kvstore.Store, mailer *email.EmailService) *NewsletterController {
	return &NewsletterController{kv: kv, mailer: mailer}
}

type NewsletterSubscriptionInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Subscribe é idempotente por email em minúsculas: a chave derivada
// garante no máximo um registo por assinante.
func (n *NewsletterController) Subscribe(c *fiber.Ctx) error {
	input := new(NewsletterSubscriptionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	if err := validation.ValidateNewsletter(input.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	key := model.SubscriberKey(input.Email)

	var existing model.Subscriber
	found, err := n.kv.Get(key, &existing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if found {
		return c.JSON(fiber.Map{
			"success":           true,
			"alreadySubscribed": true,
		})
	}

	subscriber := model.Subscriber{
		ID:           model.NormalizeEmail(input.Email),
		Email:        model.NormalizeEmail(input.Email),
		Name:         input.Name,
		SubscribedAt: time.Now(),
	}

	if err := n.kv.Set(key, subscriber); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if n.mailer != nil {
		if err := n.mailer.SendSubscriberWelcome(subscriber.Email, subscriber.Name); err != nil {
			log.Printf("Could not send welcome email: %v", err)
		}
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "Subscrição efetuada com sucesso",
	})
}

// List devolve os assinantes via prefix scan, mais recentes primeiro.
func (n *NewsletterController) List(c *fiber.Ctx) error {
	entries, err := n.kv.ScanByPrefix(model.NewsletterKeyPrefix)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	subscribers := make([]model.Subscriber, 0, len(entries))
	for _, entry := range entries {
		var sub model.Subscriber
		if err := json.Unmarshal(entry.Value, &sub); err != nil {
			log.Printf("Skipping unreadable subscriber %s: %v", entry.Key, err)
			continue
		}
		subscribers = append(subscribers, sub)
	}

	sort.Slice(subscribers, func(i, j int) bool {
		return subscribers[i].SubscribedAt.After(subscribers[j].SubscribedAt)
	})

	return c.JSON(fiber.Map{
		"success":     true,
		"subscribers": subscribers,
		"count":       len(subscribers),
	})
}

// Delete remove um assinante. Apagar um id inexistente não é erro.
func (n *NewsletterController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID do assinante em falta",
		})
	}

	if err := n.kv.Delete(model.NewsletterKeyPrefix + model.NormalizeEmail(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Assinante excluído com sucesso",
	})
}
