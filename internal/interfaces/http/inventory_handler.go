package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-riesgos/internal/application/dto"
	"github.com/jhoicas/inventario-riesgos/internal/application/inventory"
	"github.com/jhoicas/inventario-riesgos/internal/domain"
)

// InventoryHandler maneja las entradas, salidas y consultas de inventario por región.
type InventoryHandler struct {
	uc *inventory.TransactionUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.TransactionUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List GET /api/regions
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	list := h.uc.ListRegions(c.UserContext())
	return c.JSON(fiber.Map{
		"total":   len(list),
		"regions": list,
	})
}

// Display GET /api/regions/:region
func (h *InventoryHandler) Display(c *fiber.Ctx) error {
	region, err := regionParam(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Display(c.UserContext(), region)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Incoming POST /api/regions/:region/incoming
// Body: material_name, size (m³), cost. 409 STOCK_OVERFLOW si no cabe.
func (h *InventoryHandler) Incoming(c *fiber.Ctx) error {
	var in dto.IncomingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	region, err := regionParam(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Incoming(c.UserContext(), region, in.MaterialName, in.Size, in.Cost)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Outgoing POST /api/regions/:region/outgoing
func (h *InventoryHandler) Outgoing(c *fiber.Ctx) error {
	var in dto.OutgoingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	region, err := regionParam(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Outgoing(c.UserContext(), region, in.MaterialName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// regionParam devuelve el nombre de la región decodificado ("Sri%20Lanka" → "Sri Lanka").
// Fiber entrega los parámetros de ruta sin decodificar.
func regionParam(c *fiber.Ctx) (string, error) {
	region, err := url.PathUnescape(c.Params("region"))
	if err != nil {
		return "", fmt.Errorf("%w: región mal codificada: %v", domain.ErrInvalidInput, err)
	}
	return region, nil
}
