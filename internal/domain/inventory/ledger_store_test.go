package inventory_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-riesgos/internal/domain"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/domain/inventory"
)

var size1000 = decimal.NewFromInt(1000)

func TestNewRegionLedgerStore_EstadoInicial(t *testing.T) {
	store := inventory.NewRegionLedgerStore([]string{"North", "South", "North", "", "East"}, size1000)

	assert.Equal(t, []string{"North", "South", "East"}, store.Regions(),
		"regiones distintas en orden de primera aparición")

	for _, l := range store.ViewAll() {
		assert.True(t, l.AvailableSpace.Equal(l.WarehouseSize), "espacio disponible == tamaño")
		assert.True(t, l.WarehouseSize.Equal(size1000))
		assert.Empty(t, l.Materials)
		assert.True(t, l.TotalCost.IsZero())
	}
}

func TestRegionLedgerStore_RegionDesconocida(t *testing.T) {
	store := inventory.NewRegionLedgerStore([]string{"North"}, size1000)

	_, err := store.View("Atlantis")
	assert.ErrorIs(t, err, domain.ErrUnknownRegion)

	called := false
	err = store.Update("Atlantis", func(*entity.RegionLedger) error { called = true; return nil })
	assert.ErrorIs(t, err, domain.ErrUnknownRegion)
	assert.False(t, called)
	assert.False(t, store.Has("Atlantis"))
}

func TestRegionLedgerStore_ViewEsCopia(t *testing.T) {
	store := inventory.NewRegionLedgerStore([]string{"North"}, size1000)
	require.NoError(t, store.Update("North", func(l *entity.RegionLedger) error {
		l.Materials = append(l.Materials, entity.MaterialEntry{Name: "Tea", Size: decimal.NewFromInt(1)})
		return nil
	}))

	view, err := store.View("North")
	require.NoError(t, err)
	view.Materials[0].Name = "Mutado"

	again, _ := store.View("North")
	assert.Equal(t, "Tea", again.Materials[0].Name, "la copia no debe compartir memoria con el libro")
}

func TestRegionLedgerStore_UpdateConcurrente(t *testing.T) {
	store := inventory.NewRegionLedgerStore([]string{"North"}, size1000)
	one := decimal.NewFromInt(1)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update("North", func(l *entity.RegionLedger) error {
				l.AvailableSpace = l.AvailableSpace.Sub(one)
				return nil
			})
		}()
	}
	wg.Wait()

	l, _ := store.View("North")
	assert.True(t, l.AvailableSpace.Equal(decimal.NewFromInt(900)))
}
