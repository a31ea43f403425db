package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validContact() ContactInput {
	return ContactInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Phone:    "912345678",
		Interest: "compra",
		Message:  "olá",
	}
}

func TestValidateContactAccepts(t *testing.T) {
	assert.NoError(t, ValidateContact(validContact()))
}

func TestValidateContactRequiresEveryField(t *testing.T) {
	cases := map[string]func(*ContactInput){
		"name":     func(in *ContactInput) { in.Name = "" },
		"email":    func(in *ContactInput) { in.Email = "" },
		"phone":    func(in *ContactInput) { in.Phone = "" },
		"interest": func(in *ContactInput) { in.Interest = "" },
		"message":  func(in *ContactInput) { in.Message = "" },
	}

	for field, clear := range cases {
		in := validContact()
		clear(&in)
		err := ValidateContact(in)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidateContactRejectsMalformedEmail(t *testing.T) {
	in := validContact()
	in.Email = "bad-email"
	err := ValidateContact(in)
	assert.EqualError(t, err, "Email inválido")
}

func TestValidateNewsletter(t *testing.T) {
	assert.NoError(t, ValidateNewsletter("a@b.com"))
	assert.Error(t, ValidateNewsletter(""))
	assert.EqualError(t, ValidateNewsletter("not-an-email"), "Email inválido")
}
