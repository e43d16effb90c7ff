package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ElectroStock-api/internal/application/dto"
	"github.com/jhoicas/ElectroStock-api/internal/application/usecase"
)

// ReportHandler maneja reportes y tablero (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetReports godoc
// @Summary      Generar reporte
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  true   "LOW_STOCK | INVENTORY | MOVEMENT"
// @Param        from  query  string  false  "Inicio de ventana (RFC 3339, solo MOVEMENT)"
// @Param        to    query  string  false  "Fin de ventana (RFC 3339, solo MOVEMENT)"
// @Success      200   {array}  object
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) GetReports(c *fiber.Ctx) error {
	switch c.Query("type") {
	case dto.ReportLowStock:
		out, err := h.uc.LowStock(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	case dto.ReportInventory:
		out, err := h.uc.Inventory(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	case dto.ReportMovement:
		from, err := parseTimeQuery(c.Query("from"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from inválido (RFC 3339)"})
		}
		to, err := parseTimeQuery(c.Query("to"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to inválido (RFC 3339)"})
		}
		out, err := h.uc.Movement(c.Context(), from, to)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "type debe ser LOW_STOCK, INVENTORY o MOVEMENT"})
}

// Dashboard godoc
// @Summary      Tablero
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func parseTimeQuery(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
