package ports

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
)

// InventoryReportGenerator genera el reporte gráfico (PDF) del inventario de todas las regiones.
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, generatedAt time.Time, ledgers []entity.RegionLedger) ([]byte, error)
}
