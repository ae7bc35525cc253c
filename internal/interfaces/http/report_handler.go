package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/sales"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

// ReportHandler maneja el reporte agregado de utilidad (solo admin/manager,
// vía RequireRole en el router).
type ReportHandler struct {
	uc  *sales.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *sales.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Summarize godoc
// @Summary      Reporte de ventas con utilidad total del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "Inicio del rango (YYYY-MM-DD o timestamp)"
// @Param        to     query  string  false  "Fin del rango (YYYY-MM-DD o timestamp)"
// @Param        month  query  string  false  "Atajo de mes YYYY-MM (excluyente con from/to)"
// @Param        user   query  string  false  "Filtro por vendedor"
// @Success      200    {object}  dto.ReportResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/sales/report [get]
func (h *ReportHandler) Summarize(c *fiber.Ctx) error {
	var q dto.ReportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválida"})
	}
	out, err := h.uc.Summarize(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c, h.log, "sales.report", err)
	}
	return c.JSON(out)
}
