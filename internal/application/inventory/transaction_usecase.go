package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-riesgos/internal/application/dto"
	"github.com/jhoicas/inventario-riesgos/internal/application/ports"
	"github.com/jhoicas/inventario-riesgos/internal/domain"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	domaininv "github.com/jhoicas/inventario-riesgos/internal/domain/inventory"
)

// Tipos de transacción (etiquetas de métricas y logs).
const (
	TransactionIncoming = "incoming"
	TransactionOutgoing = "outgoing"
)

// TransactionUseCase aplica entradas y salidas de material sobre los libros de cada región.
// Los errores de negocio (región desconocida, espacio insuficiente, material no encontrado)
// se devuelven al llamador sin modificar el libro.
type TransactionUseCase struct {
	store   *domaininv.RegionLedgerStore
	metrics ports.MetricsRecorder
	log     zerolog.Logger
}

// NewTransactionUseCase construye el caso de uso. metrics puede ser nil.
func NewTransactionUseCase(store *domaininv.RegionLedgerStore, metrics ports.MetricsRecorder, log zerolog.Logger) *TransactionUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &TransactionUseCase{store: store, metrics: metrics, log: log}
}

// Incoming registra el ingreso de un material (abastecimiento del proveedor).
// Si size supera el espacio disponible se rechaza con ErrInsufficientCapacity (riesgo: Stock Overflow).
func (uc *TransactionUseCase) Incoming(_ context.Context, region, materialName string, size, cost decimal.Decimal) (*dto.TransactionResponse, error) {
	if strings.TrimSpace(materialName) == "" || size.IsNegative() || cost.IsNegative() {
		uc.metrics.Transaction(TransactionIncoming, "invalid")
		return nil, domain.ErrInvalidInput
	}

	var out dto.TransactionResponse
	err := uc.store.Update(region, func(l *entity.RegionLedger) error {
		if size.GreaterThan(l.AvailableSpace) {
			return fmt.Errorf("%w: región %q, disponible %s, requerido %s",
				domain.ErrInsufficientCapacity, region, l.AvailableSpace, size)
		}
		l.Materials = append(l.Materials, entity.MaterialEntry{Name: materialName, Size: size, Cost: cost})
		l.AvailableSpace = l.AvailableSpace.Sub(size)
		l.TotalCost = l.TotalCost.Add(cost)
		out = transactionResponse(l, materialName, size, cost)
		return nil
	})
	if err != nil {
		uc.metrics.Transaction(TransactionIncoming, resultLabel(err))
		uc.log.Warn().Err(err).Str("region", region).Str("material", materialName).Msg("entrada rechazada")
		return nil, err
	}

	uc.metrics.Transaction(TransactionIncoming, "ok")
	uc.log.Info().
		Str("region", region).
		Str("material", materialName).
		Str("available_space", out.AvailableSpace.String()).
		Msg("material almacenado")
	return &out, nil
}

// Outgoing despacha la primera entrada con ese nombre (orden de almacenamiento).
// Devuelve el espacio y el costo de esa entrada al libro sin acotar los valores resultantes.
func (uc *TransactionUseCase) Outgoing(_ context.Context, region, materialName string) (*dto.TransactionResponse, error) {
	var out dto.TransactionResponse
	err := uc.store.Update(region, func(l *entity.RegionLedger) error {
		idx := l.IndexOfMaterial(materialName)
		if idx < 0 {
			return fmt.Errorf("%w: %q en región %q", domain.ErrMaterialNotFound, materialName, region)
		}
		m := l.Materials[idx]
		l.AvailableSpace = l.AvailableSpace.Add(m.Size)
		l.TotalCost = l.TotalCost.Sub(m.Cost)
		l.Materials = append(l.Materials[:idx], l.Materials[idx+1:]...)
		out = transactionResponse(l, m.Name, m.Size, m.Cost)
		return nil
	})
	if err != nil {
		uc.metrics.Transaction(TransactionOutgoing, resultLabel(err))
		uc.log.Warn().Err(err).Str("region", region).Str("material", materialName).Msg("salida rechazada")
		return nil, err
	}

	uc.metrics.Transaction(TransactionOutgoing, "ok")
	uc.log.Info().
		Str("region", region).
		Str("material", materialName).
		Str("available_space", out.AvailableSpace.String()).
		Msg("material despachado")
	return &out, nil
}

// Display devuelve el detalle del inventario de una región.
func (uc *TransactionUseCase) Display(_ context.Context, region string) (*dto.RegionInventoryDTO, error) {
	l, err := uc.store.View(region)
	if err != nil {
		return nil, err
	}
	materials := make([]dto.MaterialDTO, 0, len(l.Materials))
	for _, m := range l.Materials {
		materials = append(materials, dto.MaterialDTO{Name: m.Name, Size: m.Size, Cost: m.Cost})
	}
	return &dto.RegionInventoryDTO{
		Region:         l.Region,
		WarehouseSize:  l.WarehouseSize,
		AvailableSpace: l.AvailableSpace,
		TotalCost:      l.TotalCost,
		Materials:      materials,
	}, nil
}

// ListRegions resume todos los libros en orden de iteración.
func (uc *TransactionUseCase) ListRegions(_ context.Context) []dto.RegionSummaryDTO {
	ledgers := uc.store.ViewAll()
	out := make([]dto.RegionSummaryDTO, 0, len(ledgers))
	for _, l := range ledgers {
		out = append(out, dto.RegionSummaryDTO{
			Region:         l.Region,
			WarehouseSize:  l.WarehouseSize,
			AvailableSpace: l.AvailableSpace,
			TotalCost:      l.TotalCost,
			MaterialCount:  len(l.Materials),
		})
	}
	return out
}

func transactionResponse(l *entity.RegionLedger, name string, size, cost decimal.Decimal) dto.TransactionResponse {
	return dto.TransactionResponse{
		Region:         l.Region,
		MaterialName:   name,
		Size:           size,
		Cost:           cost,
		AvailableSpace: l.AvailableSpace,
		TotalCost:      l.TotalCost,
	}
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownRegion):
		return "unknown_region"
	case errors.Is(err, domain.ErrInsufficientCapacity):
		return "insufficient_capacity"
	case errors.Is(err, domain.ErrMaterialNotFound):
		return "material_not_found"
	default:
		return "error"
	}
}
