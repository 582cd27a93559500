package csvstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/domain/repository"
)

// SnapshotHeader columnas del snapshot de inventario.
var SnapshotHeader = []string{
	"Region",
	"Material Name",
	"Size (cubic meters)",
	"Cost ($)",
	"Available Space (cubic meters)",
	"Total Cost ($)",
}

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo escribe el snapshot en un archivo CSV, reemplazándolo completo en cada Save.
type SnapshotRepo struct {
	path string
}

// snapshotFileMode permisos del archivo final (CreateTemp crea con 0600).
const snapshotFileMode = 0o644

// NewSnapshotRepository construye el adaptador sobre la ruta indicada.
func NewSnapshotRepository(path string) *SnapshotRepo {
	return &SnapshotRepo{path: path}
}

// Save escribe primero en un archivo temporal y luego lo renombra, para no dejar
// un snapshot a medias si el proceso se interrumpe.
func (r *SnapshotRepo) Save(_ context.Context, rows []entity.SnapshotRow) error {
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.csv")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := WriteSnapshot(tmp, rows); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(snapshotFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("permisos del snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("reemplazar snapshot %s: %w", r.path, err)
	}
	return nil
}

// WriteSnapshot escribe cabecera y filas en w.
func WriteSnapshot(w io.Writer, rows []entity.SnapshotRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SnapshotHeader); err != nil {
		return fmt.Errorf("escribir cabecera: %w", err)
	}
	for _, row := range rows {
		rec := []string{
			row.Region,
			row.MaterialName,
			row.Size.String(),
			row.Cost.String(),
			row.AvailableSpace.String(),
			row.TotalCost.String(),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("escribir fila: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
