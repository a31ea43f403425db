package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"reabita_backend/pkg/utils/jwt"
)

type AuthController struct {
	passwordHash string
}

func NewAuthController(passwordHash string) *AuthController {
	return &AuthController{passwordHash: passwordHash}
}

type LoginInput struct {
	Password string `json:"password"`
}

// Login troca a password de administração por um token com scope admin.
// Alternativa ao header injetado pela edge para ambientes sem edge.
func (a *AuthController) Login(c *fiber.Ctx) error {
	if a.passwordHash == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Login de administração não configurado",
		})
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Pedido inválido",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Credenciais inválidas",
		})
	}

	token, err := jwt.GenerateAdminToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Não foi possível gerar o token",
		})
	}

	return c.JSON(fiber.Map{
		"token":     token,
		"expiresIn": 86400,
	})
}
