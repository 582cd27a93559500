package console_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-riesgos/internal/application/alerts"
	"github.com/jhoicas/inventario-riesgos/internal/application/inventory"
	"github.com/jhoicas/inventario-riesgos/internal/application/snapshot"
	domaininv "github.com/jhoicas/inventario-riesgos/internal/domain/inventory"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/infrastructure/csvstore"
	"github.com/jhoicas/inventario-riesgos/internal/infrastructure/notify"
	"github.com/jhoicas/inventario-riesgos/internal/interfaces/console"
)

func runMenu(t *testing.T, input string) (string, string) {
	t.Helper()
	records := []entity.AnalyzedRecord{
		{Region: "North", Month: "January", Year: 2024, Comment: "Flooding near depot", SentimentScore: 0.45},
		{Region: "South", Month: "January", Year: 2024, Comment: "Steady", SentimentScore: 0.9},
	}
	store := domaininv.NewRegionLedgerStore([]string{"North", "South"}, decimal.NewFromInt(1000))
	log := zerolog.Nop()
	path := filepath.Join(t.TempDir(), "inventory_status.csv")

	var out bytes.Buffer
	menu := console.NewMenu(
		inventory.NewTransactionUseCase(store, nil, log),
		alerts.NewGenerateAlertsUseCase(csvstore.NewAnalyzedRecordRepo(records), store, notify.NewLogNotifier(log), nil, log),
		snapshot.NewExportUseCase(store, []snapshot.Sink{{Name: "csv", Repo: csvstore.NewSnapshotRepository(path)}}, nil, nil, log),
		strings.NewReader(input),
		&out,
	)
	require.NoError(t, menu.Run(context.Background()))
	return out.String(), path
}

func TestMenu_EntradaMostrarYGuardar(t *testing.T) {
	input := strings.Join([]string{
		"1", "North", "Tea", "600", "300",
		"1", "North", "Rice", "500", "100",
		"3", "North",
		"5",
	}, "\n") + "\n"

	out, path := runMenu(t, input)

	assert.Contains(t, out, "Tea almacenado en North. Espacio disponible: 400 m³.")
	assert.Contains(t, out, "Riesgo: Stock Overflow.")
	assert.Contains(t, out, "    - Tea: tamaño=600 m³, costo=$300.00")
	assert.Contains(t, out, "Costo total de materiales: $300.00")
	assert.Contains(t, out, "Saliendo del sistema.")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "cabecera + una fila")
	assert.Equal(t, "North", rows[1][0])
	assert.Equal(t, "Tea", rows[1][1])
}

func TestMenu_SalidaYErrores(t *testing.T) {
	input := strings.Join([]string{
		"2", "North", "Steel",
		"3", "Atlantis",
		"9",
		"5",
	}, "\n") + "\n"

	out, _ := runMenu(t, input)

	assert.Contains(t, out, "Material 'Steel' no encontrado en la región 'North'.")
	assert.Contains(t, out, "Región 'Atlantis' no encontrada.")
	assert.Contains(t, out, "Opción inválida.")
}

func TestMenu_AlertasConFiltro(t *testing.T) {
	input := strings.Join([]string{"4", "North", "", "5"}, "\n") + "\n"

	out, _ := runMenu(t, input)

	assert.Contains(t, out, "Region: North")
	assert.NotContains(t, out, "Region: South")
	assert.Contains(t, out, "Notificación enviada.")
	assert.Contains(t, out, "Total: 1, enviadas: 1, fallidas: 0, no evaluables: 0")
}

func TestMenu_EOFSaleSinGuardar(t *testing.T) {
	out, path := runMenu(t, "3\nSouth\n")

	assert.Contains(t, out, "Región: South")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "sin opción 5 no se escribe el snapshot")
}
