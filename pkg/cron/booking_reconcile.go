package cron

import (
	"encoding/json"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"reabita_backend/internal/model"
	"reabita_backend/pkg/kvstore"
)

const (
	// Idade mínima de uma entrada pendente antes de o cron lhe tocar;
	// evita corrida com um pedido ainda em curso.
	pendingGracePeriod = 5 * time.Minute
	// Entradas nunca confirmadas pelo webhook são descartadas ao fim disto.
	unconfirmedTTL = 24 * time.Hour
)

func InitBookingReconcileCron(db *gorm.DB, kv *kvstore.Store) {
	c := cron.New()

	_, err := c.AddFunc("@every 10m", func() {
		if _, err := ReconcilePendingBookings(db, kv, pendingGracePeriod); err != nil {
			log.Printf("Booking reconciliation failed: %v", err)
		}
	})

	if err != nil {
		log.Printf("Could not initialize booking reconcile cron: %v", err)
		return
	}

	c.Start()
}

// ReconcilePendingBookings percorre as entradas schedule:pending: e
// persiste o contacto local de marcações confirmadas no calendário cujo
// registo ficou por escrever. Devolve o número de contactos recuperados.
func ReconcilePendingBookings(db *gorm.DB, kv *kvstore.Store, olderThan time.Duration) (int, error) {
	entries, err := kv.ScanByPrefix(model.SchedulePendingKeyPrefix)
	if err != nil {
		return 0, err
	}

	recovered := 0
	now := time.Now()

	for _, entry := range entries {
		var booking model.PendingBooking
		if err := json.Unmarshal(entry.Value, &booking); err != nil {
			log.Printf("Dropping unreadable pending booking %s: %v", entry.Key, err)
			kv.Delete(entry.Key)
			continue
		}

		age := now.Sub(booking.CreatedAt)
		if age < olderThan {
			continue
		}

		if booking.EventID == "" {
			// O webhook nunca confirmou; sem evento externo não há nada
			// a repor localmente.
			if age > unconfirmedTTL {
				log.Printf("Dropping unconfirmed booking %s after %s", entry.Key, unconfirmedTTL)
				kv.Delete(entry.Key)
			}
			continue
		}

		contact := model.Contact{
			Name:          booking.Name,
			Email:         booking.Email,
			Phone:         booking.Phone,
			Message:       booking.Message,
			Interest:      "visita",
			Source:        "agendamento",
			PipelineStage: model.StageVisita,
		}

		if err := db.Create(&contact).Error; err != nil {
			log.Printf("Could not recover booking %s: %v", entry.Key, err)
			continue
		}

		if err := kv.Delete(entry.Key); err != nil {
			log.Printf("Could not clear pending booking %s: %v", entry.Key, err)
			continue
		}

		log.Printf("Recovered booking %s as contact %s (event %s)", entry.Key, contact.ID, booking.EventID)
		recovered++
	}

	return recovered, nil
}
