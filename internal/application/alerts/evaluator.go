package alerts

import (
	"fmt"
	"iter"

	"github.com/jhoicas/inventario-riesgos/internal/application/dto"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/domain/inventory"
	"github.com/jhoicas/inventario-riesgos/internal/domain/risk"
)

// LedgerViewer acceso de solo lectura a los libros por región.
type LedgerViewer interface {
	View(region string) (entity.RegionLedger, error)
}

var _ LedgerViewer = (*inventory.RegionLedgerStore)(nil)

// Evaluate recorre los registros en orden y produce una alerta combinada por cada
// registro que pase los filtros. La secuencia es perezosa y se recalcula en cada
// recorrido: lee el estado actual de los libros en el momento de producir cada alerta.
//
// Un registro cuya región no tiene libro produce un error (ErrUnknownRegion) para ese
// registro; el recorrido continúa si el consumidor lo permite.
func Evaluate(records []entity.AnalyzedRecord, ledgers LedgerViewer, filter dto.AlertFilter) iter.Seq2[entity.AlertResult, error] {
	return func(yield func(entity.AlertResult, error) bool) {
		for _, rec := range records {
			if filter.Region != "" && rec.Region != filter.Region {
				continue
			}
			if filter.Month != "" && rec.Month != filter.Month {
				continue
			}

			ledger, err := ledgers.View(rec.Region)
			if err != nil {
				if !yield(entity.AlertResult{Region: rec.Region, Month: rec.Month, Year: rec.Year},
					fmt.Errorf("registro %s/%s: %w", rec.Region, rec.Month, err)) {
					return
				}
				continue
			}

			result := entity.AlertResult{
				Region:         rec.Region,
				Month:          rec.Month,
				Year:           rec.Year,
				Comment:        rec.Comment,
				RiskAnalysis:   rec.RiskAnalysis,
				SentimentScore: rec.SentimentScore,
				Sentiment:      risk.ClassifySentiment(rec.SentimentScore),
				Capacity:       risk.ClassifyCapacity(ledger.AvailableSpace, ledger.WarehouseSize),
				AvailableSpace: ledger.AvailableSpace,
				WarehouseSize:  ledger.WarehouseSize,
			}
			if !yield(result, nil) {
				return
			}
		}
	}
}
