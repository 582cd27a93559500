package entity

import "github.com/shopspring/decimal"

// MaterialEntry representa un material almacenado en la bodega de una región.
// El nombre no es único: pueden existir varias entradas con el mismo nombre.
type MaterialEntry struct {
	Name string
	Size decimal.Decimal // metros cúbicos
	Cost decimal.Decimal
}

// RegionLedger es el libro de inventario de una región: capacidad de la bodega,
// materiales almacenados (en orden de entrada) y costo acumulado.
//
// AvailableSpace puede quedar fuera de [0, WarehouseSize] y TotalCost puede ser
// negativo; son estados observables que el evaluador de alertas detecta.
type RegionLedger struct {
	Region         string
	WarehouseSize  decimal.Decimal // fija desde la creación
	AvailableSpace decimal.Decimal
	Materials      []MaterialEntry
	TotalCost      decimal.Decimal
}

// NewRegionLedger crea un libro vacío con todo el espacio disponible.
func NewRegionLedger(region string, warehouseSize decimal.Decimal) *RegionLedger {
	return &RegionLedger{
		Region:         region,
		WarehouseSize:  warehouseSize,
		AvailableSpace: warehouseSize,
		Materials:      []MaterialEntry{},
		TotalCost:      decimal.Zero,
	}
}

// Clone devuelve una copia independiente (los materiales no comparten arreglo).
func (l *RegionLedger) Clone() RegionLedger {
	c := *l
	c.Materials = make([]MaterialEntry, len(l.Materials))
	copy(c.Materials, l.Materials)
	return c
}

// IndexOfMaterial devuelve la posición de la primera entrada con ese nombre, o -1.
func (l *RegionLedger) IndexOfMaterial(name string) int {
	for i, m := range l.Materials {
		if m.Name == name {
			return i
		}
	}
	return -1
}
