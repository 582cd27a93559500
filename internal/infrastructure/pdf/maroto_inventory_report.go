// Package pdf genera el reporte de inventario por región.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                     │  Fecha de generación  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por región:                                                │
//	│    Región + nivel de capacidad                              │
//	│    Tamaño | Disponible | Costo total                        │
//	│    TABLA: Material | Tamaño | Costo                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: totales generales                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-riesgos/internal/application/ports"
	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
	"github.com/jhoicas/inventario-riesgos/internal/domain/risk"
	"github.com/jhoicas/inventario-riesgos/pkg/numfmt"
)

var _ ports.InventoryReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// MarotoReportGenerator implementa ports.InventoryReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	title string
}

// NewMarotoReportGenerator construye el generador; title aparece en el encabezado.
func NewMarotoReportGenerator(title string) *MarotoReportGenerator {
	return &MarotoReportGenerator{title: title}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	generatedAt time.Time,
	ledgers []entity.RegionLedger,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	totalCost := decimal.Zero
	totalMaterials := 0
	for _, l := range ledgers {
		m.AddRows(regionRows(l)...)
		totalCost = totalCost.Add(l.TotalCost)
		totalMaterials += len(l.Materials)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(len(ledgers), totalMaterials, totalCost))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// regionRows: encabezado de la región, totales y tabla de materiales.
func regionRows(l entity.RegionLedger) []core.Row {
	tier := risk.ClassifyCapacity(l.AvailableSpace, l.WarehouseSize)
	tierColor := colorGray
	if tier != entity.CapacityNone {
		tierColor = colorAlert
	}

	rows := []core.Row{
		row.New(9).Add(
			col.New(8).Add(text.New(l.Region, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			})),
			col.New(4).Add(text.New(string(tier), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: tierColor, Top: 3,
			})),
		),
		row.New(6).Add(col.New(12).Add(text.New(fmt.Sprintf(
			"Bodega: %s m³   |   Disponible: %s m³   |   Costo total: %s",
			numfmt.Quantity(l.WarehouseSize),
			numfmt.Quantity(l.AvailableSpace),
			numfmt.Money(l.TotalCost),
		), props.Text{Size: 8, Top: 1, Color: colorGray}))),
	}

	if len(l.Materials) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(text.New("Sin materiales almacenados", props.Text{
			Size: 8, Top: 1, Left: 4, Color: colorGray,
		}))))
	}

	rows = append(rows, row.New(6).Add(
		col.New(6).Add(text.New("Material", props.Text{Style: fontstyle.Bold, Size: 8, Left: 4, Top: 1})),
		col.New(3).Add(text.New("Tamaño (m³)", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New("Costo", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1})),
	))
	for _, mat := range l.Materials {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(mat.Name, props.Text{Size: 8, Left: 4})),
			col.New(3).Add(text.New(numfmt.Quantity(mat.Size), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(numfmt.Money(mat.Cost), props.Text{Size: 8, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func totalsRow(regions, materials int, cost decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(4).Add(text.New(fmt.Sprintf("Regiones: %d", regions), props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(4).Add(text.New(fmt.Sprintf("Materiales: %d", materials), props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(4).Add(text.New("Costo total: "+numfmt.Money(cost), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}
