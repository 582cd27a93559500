package repository

import (
	"context"

	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
)

// AnalyzedRecordRepository puerto de lectura del dataset analizado (sentimiento + riesgo).
// Los registros se validan contra el esquema al cargarse, no al usarse.
type AnalyzedRecordRepository interface {
	// List devuelve los registros en el orden del dataset.
	List(ctx context.Context) ([]entity.AnalyzedRecord, error)
	// Regions devuelve las regiones distintas en orden de primera aparición.
	Regions(ctx context.Context) ([]string, error)
}
