package repository

import (
	"context"

	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
)

// SnapshotRepository puerto de persistencia del snapshot de inventario.
// Cada Save reemplaza el snapshot anterior (gana la última escritura).
type SnapshotRepository interface {
	Save(ctx context.Context, rows []entity.SnapshotRow) error
}
