package dto

import "github.com/shopspring/decimal"

// SnapshotRowDTO fila del snapshot de inventario.
type SnapshotRowDTO struct {
	Region         string          `json:"region"`
	MaterialName   string          `json:"material_name"`
	Size           decimal.Decimal `json:"size"`
	Cost           decimal.Decimal `json:"cost"`
	AvailableSpace decimal.Decimal `json:"available_space"`
	TotalCost      decimal.Decimal `json:"total_cost"`
}

// SnapshotResponse snapshot completo.
type SnapshotResponse struct {
	Total int              `json:"total"`
	Rows  []SnapshotRowDTO `json:"rows"`
}

// SnapshotSavedResponse resultado de persistir el snapshot.
type SnapshotSavedResponse struct {
	Rows  int      `json:"rows"`
	Sinks []string `json:"sinks"`
}
