package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-riesgos/internal/application/alerts"
	"github.com/jhoicas/inventario-riesgos/internal/application/dto"
)

// AlertHandler dispara la evaluación de alertas de riesgo.
type AlertHandler struct {
	uc *alerts.GenerateAlertsUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.GenerateAlertsUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// Generate GET /api/alerts?region=&month=
// Evalúa los registros, notifica cada alerta y devuelve el lote. Los fallos de
// entrega se reportan por alerta; la respuesta sigue siendo 200.
func (h *AlertHandler) Generate(c *fiber.Ctx) error {
	var filter dto.AlertFilter
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	batch, err := h.uc.Generate(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(batch)
}
