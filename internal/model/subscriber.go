package model

import (
	"strings"
	"time"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Subscriber vive no armazenamento chave-valor, não numa tabela própria.
// A chave é derivada do email em minúsculas (ver pkg/kvstore).
type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

const NewsletterKeyPrefix = "newsletter:"

// SubscriberKey deriva a chave determinística de um email.
func SubscriberKey(email string) string {
	return NewsletterKeyPrefix + NormalizeEmail(email)
}
