package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

// internalError responde 500 con un mensaje opaco. El detalle del error
// (que puede incluir DSN, hosts, SQL) queda solo en el log.
func internalError(c *fiber.Ctx, log *logger.Logger, op string, err error) error {
	if log != nil {
		log.Error().Err(err).Str("op", op).Str("path", c.Path()).Msg("error interno")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
