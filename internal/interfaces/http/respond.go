package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jcastrom/tienda-api/internal/application/dto"
	"github.com/jcastrom/tienda-api/internal/domain"
)

// Success escribe el sobre uniforme de éxito. El status del cuerpo siempre
// coincide con el código HTTP; dataCount es el largo de la colección principal
// (1 para singletons envueltos).
func Success(c *fiber.Ctx, status int, message string, dataCount int, data interface{}) error {
	return c.Status(status).JSON(dto.Envelope{
		Success:   true,
		Status:    status,
		Message:   message,
		DataCount: dataCount,
		Data:      data,
	})
}

// SuccessWithToken igual que Success pero incluye el token en el tope del sobre (login).
func SuccessWithToken(c *fiber.Ctx, status int, message, token string, dataCount int, data interface{}) error {
	return c.Status(status).JSON(dto.Envelope{
		Success:   true,
		Status:    status,
		Message:   message,
		Token:     token,
		DataCount: dataCount,
		Data:      data,
	})
}

// Error es el responder central de fallas: mapea *domain.Error a su status;
// cualquier otro error se loguea y sale como 500 genérico, nunca con detalle
// interno.
func Error(c *fiber.Ctx, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) {
		status := derr.Status
		if status == 0 {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(dto.ErrorEnvelope{
			Success: false,
			Error:   dto.ErrorBody{Status: status, Message: derr.Message},
		})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorEnvelope{
		Success: false,
		Error:   dto.ErrorBody{Status: fiber.StatusInternalServerError, Message: "Internal server error"},
	})
}
