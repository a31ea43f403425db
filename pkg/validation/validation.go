package validation

import (
	"errors"
	"fmt"
	"net/mail"
)

var ErrInvalidEmail = errors.New("Email inválido")

// ValidEmail aceita o padrão local@domínio standard.
func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Interest string
	Message  string
}

// ValidateContact exige todos os campos do formulário de contacto e um
// email bem formado. Devolve o primeiro campo em falta, na ordem do form.
func ValidateContact(in ContactInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"phone", in.Phone},
		{"interest", in.Interest},
		{"message", in.Message},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("Campo obrigatório em falta: %s", field.name)
		}
	}

	if !ValidEmail(in.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateNewsletter exige apenas um email bem formado.
func ValidateNewsletter(email string) error {
	if email == "" {
		return errors.New("Campo obrigatório em falta: email")
	}
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}
