package entity

import "github.com/shopspring/decimal"

// SnapshotRow fila plana del snapshot de inventario: un material de una región
// junto con los totales actuales del libro de esa región.
type SnapshotRow struct {
	Region         string
	MaterialName   string
	Size           decimal.Decimal
	Cost           decimal.Decimal
	AvailableSpace decimal.Decimal
	TotalCost      decimal.Decimal
}
