package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

const createSnapshotTable = `
	CREATE TABLE IF NOT EXISTS inventory_snapshots (
		snapshot_id     UUID        NOT NULL,
		position        INTEGER     NOT NULL,
		region          TEXT        NOT NULL,
		material_name   TEXT        NOT NULL,
		size            NUMERIC     NOT NULL,
		cost            NUMERIC     NOT NULL,
		available_space NUMERIC     NOT NULL,
		total_cost      NUMERIC     NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (snapshot_id, position)
	)`

// SnapshotRepo implementación del puerto SnapshotRepository sobre PostgreSQL.
// La tabla guarda solo el último snapshot: cada Save borra el anterior en la misma transacción.
type SnapshotRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewSnapshotRepository construye el adaptador de persistencia de snapshots.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepo {
	return &SnapshotRepo{pool: pool, tx: NewTxRunner(pool)}
}

// EnsureSchema crea la tabla si no existe.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createSnapshotTable); err != nil {
		return fmt.Errorf("crear tabla inventory_snapshots: %w", err)
	}
	return nil
}

// Save reemplaza el snapshot almacenado por rows.
func (r *SnapshotRepo) Save(ctx context.Context, rows []entity.SnapshotRow) error {
	snapshotID := uuid.New()
	now := time.Now().UTC()

	return r.tx.Run(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM inventory_snapshots`); err != nil {
			return fmt.Errorf("borrar snapshot anterior: %w", err)
		}

		batch := &pgx.Batch{}
		for i, row := range rows {
			batch.Queue(`
				INSERT INTO inventory_snapshots
					(snapshot_id, position, region, material_name, size, cost, available_space, total_cost, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				snapshotID, i, row.Region, row.MaterialName,
				row.Size, row.Cost, row.AvailableSpace, row.TotalCost, now,
			)
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
		return nil
	})
}
