// Package inventory contiene el almacén de libros de inventario por región.
//
// El conjunto de regiones se fija al construir el almacén y no cambia durante
// la vida del proceso. Cada región tiene su propio candado porque todas las
// transacciones afectan a una sola región.
package inventory

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-riesgos/internal/domain"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
)

type regionSlot struct {
	mu     sync.Mutex
	ledger *entity.RegionLedger
}

// RegionLedgerStore almacén de libros indexado por nombre de región.
type RegionLedgerStore struct {
	order []string
	slots map[string]*regionSlot
}

// NewRegionLedgerStore crea un libro por cada región distinta (orden de primera aparición),
// todos con el mismo tamaño de bodega por defecto. Las regiones vacías se ignoran.
func NewRegionLedgerStore(regions []string, defaultWarehouseSize decimal.Decimal) *RegionLedgerStore {
	s := &RegionLedgerStore{
		order: make([]string, 0, len(regions)),
		slots: make(map[string]*regionSlot, len(regions)),
	}
	for _, r := range regions {
		if r == "" {
			continue
		}
		if _, ok := s.slots[r]; ok {
			continue
		}
		s.order = append(s.order, r)
		s.slots[r] = &regionSlot{ledger: entity.NewRegionLedger(r, defaultWarehouseSize)}
	}
	return s
}

// Regions devuelve las regiones en orden de iteración.
func (s *RegionLedgerStore) Regions() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Has indica si la región tiene libro.
func (s *RegionLedgerStore) Has(region string) bool {
	_, ok := s.slots[region]
	return ok
}

// Update ejecuta fn con el libro de la región bajo su candado.
// Si fn devuelve error el libro no debe haberse modificado (fn valida antes de mutar).
func (s *RegionLedgerStore) Update(region string, fn func(l *entity.RegionLedger) error) error {
	slot, ok := s.slots[region]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownRegion, region)
	}
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return fn(slot.ledger)
}

// View devuelve una copia del libro de la región.
func (s *RegionLedgerStore) View(region string) (entity.RegionLedger, error) {
	slot, ok := s.slots[region]
	if !ok {
		return entity.RegionLedger{}, fmt.Errorf("%w: %q", domain.ErrUnknownRegion, region)
	}
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.ledger.Clone(), nil
}

// ViewAll devuelve copias de todos los libros en orden de iteración.
// Cada región se copia bajo su propio candado; no es una foto atómica global.
func (s *RegionLedgerStore) ViewAll() []entity.RegionLedger {
	out := make([]entity.RegionLedger, 0, len(s.order))
	for _, r := range s.order {
		l, _ := s.View(r)
		out = append(out, l)
	}
	return out
}
