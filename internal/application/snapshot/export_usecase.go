package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-riesgos/internal/application/dto"
	"github.com/jhoicas/inventario-riesgos/internal/application/ports"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/domain/repository"
)

// Export aplana los libros en filas: una por material almacenado, en orden de iteración
// de regiones y de almacenamiento dentro de cada región. Cada fila repite el espacio
// disponible y el costo total actuales de su región. Las regiones sin materiales no
// aportan filas.
func Export(ledgers []entity.RegionLedger) []entity.SnapshotRow {
	rows := []entity.SnapshotRow{}
	for _, l := range ledgers {
		for _, m := range l.Materials {
			rows = append(rows, entity.SnapshotRow{
				Region:         l.Region,
				MaterialName:   m.Name,
				Size:           m.Size,
				Cost:           m.Cost,
				AvailableSpace: l.AvailableSpace,
				TotalCost:      l.TotalCost,
			})
		}
	}
	return rows
}

// LedgerLister lista copias de todos los libros.
type LedgerLister interface {
	ViewAll() []entity.RegionLedger
}

// Sink destino con nombre para el snapshot (csv, postgres, ...).
type Sink struct {
	Name string
	Repo repository.SnapshotRepository
}

// ExportUseCase materializa y persiste el estado de los libros.
type ExportUseCase struct {
	ledgers   LedgerLister
	sinks     []Sink
	generator ports.InventoryReportGenerator
	metrics   ports.MetricsRecorder
	log       zerolog.Logger
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso. generator y metrics pueden ser nil.
func NewExportUseCase(
	ledgers LedgerLister,
	sinks []Sink,
	generator ports.InventoryReportGenerator,
	metrics ports.MetricsRecorder,
	log zerolog.Logger,
) *ExportUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &ExportUseCase{
		ledgers:   ledgers,
		sinks:     sinks,
		generator: generator,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
	}
}

// Rows devuelve el snapshot actual sin persistirlo.
func (uc *ExportUseCase) Rows(_ context.Context) *dto.SnapshotResponse {
	rows := Export(uc.ledgers.ViewAll())
	out := &dto.SnapshotResponse{Total: len(rows), Rows: make([]dto.SnapshotRowDTO, 0, len(rows))}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.SnapshotRowDTO{
			Region:         r.Region,
			MaterialName:   r.MaterialName,
			Size:           r.Size,
			Cost:           r.Cost,
			AvailableSpace: r.AvailableSpace,
			TotalCost:      r.TotalCost,
		})
	}
	return out
}

// Save escribe el snapshot en todos los destinos configurados.
// Refleja solo las transacciones aplicadas antes de la llamada. Un destino que falla
// no impide escribir en los siguientes; se devuelve el primer error.
func (uc *ExportUseCase) Save(ctx context.Context) (*dto.SnapshotSavedResponse, error) {
	rows := Export(uc.ledgers.ViewAll())
	out := &dto.SnapshotSavedResponse{Rows: len(rows), Sinks: []string{}}

	var firstErr error
	for _, s := range uc.sinks {
		if err := s.Repo.Save(ctx, rows); err != nil {
			uc.log.Error().Err(err).Str("sink", s.Name).Msg("guardar snapshot")
			if firstErr == nil {
				firstErr = fmt.Errorf("snapshot %s: %w", s.Name, err)
			}
			continue
		}
		out.Sinks = append(out.Sinks, s.Name)
	}
	uc.metrics.SnapshotRows(len(rows))
	uc.log.Info().Int("rows", len(rows)).Strs("sinks", out.Sinks).Msg("snapshot guardado")
	return out, firstErr
}

// Report genera el PDF del inventario de todas las regiones.
func (uc *ExportUseCase) Report(ctx context.Context) ([]byte, error) {
	if uc.generator == nil {
		return nil, fmt.Errorf("snapshot: generador de reportes no configurado")
	}
	pdf, err := uc.generator.GenerateInventoryReport(ctx, uc.now(), uc.ledgers.ViewAll())
	if err != nil {
		return nil, fmt.Errorf("snapshot: generar reporte: %w", err)
	}
	return pdf, nil
}
