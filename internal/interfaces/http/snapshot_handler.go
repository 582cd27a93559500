package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-riesgos/internal/application/snapshot"
)

// SnapshotHandler expone el snapshot de inventario y el reporte PDF.
type SnapshotHandler struct {
	uc *snapshot.ExportUseCase
}

// NewSnapshotHandler construye el handler.
func NewSnapshotHandler(uc *snapshot.ExportUseCase) *SnapshotHandler {
	return &SnapshotHandler{uc: uc}
}

// Rows GET /api/snapshot
func (h *SnapshotHandler) Rows(c *fiber.Ctx) error {
	return c.JSON(h.uc.Rows(c.UserContext()))
}

// Save POST /api/snapshot: escribe el snapshot en todos los destinos configurados.
func (h *SnapshotHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report GET /api/snapshot/report.pdf
func (h *SnapshotHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.uc.Report(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventario.pdf"`)
	return c.Send(pdf)
}
