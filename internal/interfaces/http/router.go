package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/inventario-riesgos/internal/application/alerts"
	"github.com/jhoicas/inventario-riesgos/internal/application/inventory"
	"github.com/jhoicas/inventario-riesgos/internal/application/snapshot"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	Inventory *inventory.TransactionUseCase
	Alerts    *alerts.GenerateAlertsUseCase
	Snapshot  *snapshot.ExportUseCase
	Metrics   nethttp.Handler // nil = sin /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	// Regiones e inventario
	regions := api.Group("/regions")
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	regions.Get("/", inventoryHandler.List)
	regions.Get("/:region", inventoryHandler.Display)
	regions.Post("/:region/incoming", inventoryHandler.Incoming)
	regions.Post("/:region/outgoing", inventoryHandler.Outgoing)

	// Alertas (evaluación + notificación)
	alertHandler := NewAlertHandler(deps.Alerts)
	api.Get("/alerts", alertHandler.Generate)

	// Snapshot
	snap := api.Group("/snapshot")
	snapshotHandler := NewSnapshotHandler(deps.Snapshot)
	snap.Get("/", snapshotHandler.Rows)
	snap.Post("/", snapshotHandler.Save)
	snap.Get("/report.pdf", snapshotHandler.Report)
}
