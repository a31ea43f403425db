package model

import "time"

const SchedulePendingKeyPrefix = "schedule:pending:"

// PendingBooking é o registo de saga de uma marcação em curso. É escrito
// no armazenamento chave-valor antes da chamada ao webhook e apagado
// depois de o contacto local ficar persistido; o cron de reconciliação
// repõe os contactos em falta.
type PendingBooking struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	ProjectTitle string    `json:"projectTitle,omitempty"`
	Message      string    `json:"message,omitempty"`
	EventID      string    `json:"eventId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
