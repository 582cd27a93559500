package alerts_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-riesgos/internal/application/alerts"
	"github.com/jhoicas/inventario-riesgos/internal/application/dto"
	"github.com/jhoicas/inventario-riesgos/internal/domain"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/domain/inventory"
)

func testRecords() []entity.AnalyzedRecord {
	return []entity.AnalyzedRecord{
		{Region: "North", Month: "January", Year: 2024, Comment: "Flooding", SentimentScore: 0.49999},
		{Region: "South", Month: "January", Year: 2024, Comment: "Calm", SentimentScore: 0.51},
		{Region: "North", Month: "February", Year: 2024, Comment: "Good", SentimentScore: 0.53},
	}
}

func newStore() *inventory.RegionLedgerStore {
	return inventory.NewRegionLedgerStore([]string{"North", "South"}, decimal.NewFromInt(1000))
}

func collect(t *testing.T, records []entity.AnalyzedRecord, store alerts.LedgerViewer, f dto.AlertFilter) ([]entity.AlertResult, []error) {
	t.Helper()
	var results []entity.AlertResult
	var errs []error
	for r, err := range alerts.Evaluate(records, store, f) {
		results = append(results, r)
		errs = append(errs, err)
	}
	return results, errs
}

func TestEvaluate_OrdenYNiveles(t *testing.T) {
	results, errs := collect(t, testRecords(), newStore(), dto.AlertFilter{})
	require.Len(t, results, 3)
	for _, err := range errs {
		assert.NoError(t, err)
	}

	assert.Equal(t, "North", results[0].Region)
	assert.Equal(t, entity.SentimentHighRisk, results[0].Sentiment)
	assert.Equal(t, entity.SentimentModerate, results[1].Sentiment)
	assert.Equal(t, entity.SentimentLow, results[2].Sentiment)

	// Bodegas recién creadas: disponible == tamaño.
	for _, r := range results {
		assert.Equal(t, entity.CapacityEmptyNoStock, r.Capacity)
	}
}

func TestEvaluate_Filtros(t *testing.T) {
	store := newStore()

	results, _ := collect(t, testRecords(), store, dto.AlertFilter{Region: "North"})
	require.Len(t, results, 2)

	results, _ = collect(t, testRecords(), store, dto.AlertFilter{Month: "January"})
	require.Len(t, results, 2)

	results, _ = collect(t, testRecords(), store, dto.AlertFilter{Region: "North", Month: "February"})
	require.Len(t, results, 1)
	assert.Equal(t, 0.53, results[0].SentimentScore)

	results, _ = collect(t, testRecords(), store, dto.AlertFilter{Region: "Nowhere"})
	assert.Empty(t, results)
}

// La secuencia no guarda estado: cada recorrido lee el libro actual.
func TestEvaluate_ReevaluaEnCadaRecorrido(t *testing.T) {
	store := newStore()
	seq := alerts.Evaluate(testRecords(), store, dto.AlertFilter{Region: "South"})

	for r := range seq {
		assert.Equal(t, entity.CapacityEmptyNoStock, r.Capacity)
	}

	require.NoError(t, store.Update("South", func(l *entity.RegionLedger) error {
		l.AvailableSpace = decimal.Zero
		return nil
	}))

	for r := range seq {
		assert.Equal(t, entity.CapacityEmpty, r.Capacity)
	}
}

func TestEvaluate_RegionSinLibroNoDetieneElLote(t *testing.T) {
	records := append([]entity.AnalyzedRecord{
		{Region: "Atlantis", Month: "January", SentimentScore: 0.1},
	}, testRecords()...)

	results, errs := collect(t, records, newStore(), dto.AlertFilter{})
	require.Len(t, results, 4)
	assert.ErrorIs(t, errs[0], domain.ErrUnknownRegion)
	assert.Equal(t, "Atlantis", results[0].Region)
	for _, err := range errs[1:] {
		assert.NoError(t, err)
	}
}

func TestEvaluate_CorteTemprano(t *testing.T) {
	n := 0
	for range alerts.Evaluate(testRecords(), newStore(), dto.AlertFilter{}) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestEvaluate_Capacidad(t *testing.T) {
	store := newStore()
	set := func(region, v string) {
		require.NoError(t, store.Update(region, func(l *entity.RegionLedger) error {
			l.AvailableSpace = decimal.RequireFromString(v)
			return nil
		}))
	}
	set("North", "-10")
	set("South", "75")

	results, _ := collect(t, testRecords(), store, dto.AlertFilter{})
	assert.Equal(t, entity.CapacityOverflow, results[0].Capacity)
	assert.Equal(t, entity.CapacityCriticalShortage, results[1].Capacity)
	assert.True(t, results[1].AvailableSpace.Equal(decimal.NewFromInt(75)))
}

func TestFormatMessage(t *testing.T) {
	msg := alerts.FormatMessage(entity.AlertResult{
		Region:         "North",
		Month:          "January",
		Comment:        "Flooding",
		SentimentScore: 0.45,
		Sentiment:      entity.SentimentHighRisk,
		Capacity:       entity.CapacityEmpty,
	})
	assert.Equal(t,
		"Region: North\nMonth: January\nSentiment Score: 0.45\nComment: Flooding\n"+
			"🚨 Alert: High risk of supply chain disruption!\n"+
			"🚨 Alert: High Risk! Warehouse in North is empty. Immediate restocking required.",
		msg)

	msg = alerts.FormatMessage(entity.AlertResult{
		Region: "South", Month: "May", SentimentScore: 0.9,
		Sentiment: entity.SentimentLow, Capacity: entity.CapacityNone,
	})
	assert.Equal(t, "Region: South\nMonth: May\nSentiment Score: 0.9\nComment: \n✅ Status: Low risk.", msg,
		"sin alerta de capacidad no se agrega línea")
}
