package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/pkg/jwt"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorEnvelope{
		Success: false,
		Error:   dto.ErrorBody{Status: fiber.StatusUnauthorized, Message: message},
	})
}

// AuthMiddleware valida el Bearer Token JWT y extrae user_id y role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "Authorization format must be: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "Token is empty")
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return unauthorized(c, "Token is invalid or expired")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole corta con 401 si el rol autenticado no es el requerido.
// Correr después de AuthMiddleware.
func RequireRole(role string) fiber.Handler {
	message := "Unauthorized " + strings.ToLower(role)
	return func(c *fiber.Ctx) error {
		if GetRole(c) != role {
			return unauthorized(c, message)
		}
		return c.Next()
	}
}

// GetUserID devuelve el user_id del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
