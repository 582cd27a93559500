package dto

import "github.com/shopspring/decimal"

// IncomingRequest body para POST /api/regions/:region/incoming.
type IncomingRequest struct {
	MaterialName string          `json:"material_name"`
	Size         decimal.Decimal `json:"size"`
	Cost         decimal.Decimal `json:"cost"`
}

// OutgoingRequest body para POST /api/regions/:region/outgoing.
type OutgoingRequest struct {
	MaterialName string `json:"material_name"`
}

// TransactionResponse estado de la región después de una entrada o salida.
type TransactionResponse struct {
	Region         string          `json:"region"`
	MaterialName   string          `json:"material_name"`
	Size           decimal.Decimal `json:"size"`
	Cost           decimal.Decimal `json:"cost"`
	AvailableSpace decimal.Decimal `json:"available_space"`
	TotalCost      decimal.Decimal `json:"total_cost"`
}

// MaterialDTO material almacenado.
type MaterialDTO struct {
	Name string          `json:"name"`
	Size decimal.Decimal `json:"size"`
	Cost decimal.Decimal `json:"cost"`
}

// RegionInventoryDTO detalle del inventario de una región (materiales en orden de entrada).
type RegionInventoryDTO struct {
	Region         string          `json:"region"`
	WarehouseSize  decimal.Decimal `json:"warehouse_size"`
	AvailableSpace decimal.Decimal `json:"available_space"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Materials      []MaterialDTO   `json:"materials"`
}

// RegionSummaryDTO resumen de una región para listados.
type RegionSummaryDTO struct {
	Region         string          `json:"region"`
	WarehouseSize  decimal.Decimal `json:"warehouse_size"`
	AvailableSpace decimal.Decimal `json:"available_space"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	MaterialCount  int             `json:"material_count"`
}
