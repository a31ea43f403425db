package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"reabita_backend/pkg/utils/jwt"
)

const adminScopeKey = "isAdmin"

// AdminHeader é o contrato com a camada edge: a edge autentica e injeta
// o header; o gateway não verifica mais nada quando trustHeader está ativo.
const AdminHeader = "x-admin-request"

// ResolveScope determina o âmbito do pedido. Aceita o header da edge
// (quando configurado como confiável) ou um token assinado do /auth/login.
func ResolveScope(trustHeader bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin := false

		if trustHeader && c.Get(AdminHeader) == "true" {
			admin = true
		}

		if !admin {
			if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				token := strings.TrimPrefix(auth, "Bearer ")
				if claims, err := jwt.ValidateToken(token); err == nil && claims.Scope == jwt.ScopeAdmin {
					admin = true
				}
			}
		}

		c.Locals(adminScopeKey, admin)
		return c.Next()
	}
}

// RequireAdmin protege as rotas exclusivas de administração.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Não autorizado",
			})
		}
		return c.Next()
	}
}

func IsAdmin(c *fiber.Ctx) bool {
	admin, _ := c.Locals(adminScopeKey).(bool)
	return admin
}
