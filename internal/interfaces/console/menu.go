// Package console implementa el menú interactivo de texto sobre los mismos casos de uso
// que expone la API HTTP.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-riesgos/internal/application/alerts"
	"github.com/jhoicas/inventario-riesgos/internal/application/dto"
	"github.com/jhoicas/inventario-riesgos/internal/application/inventory"
	"github.com/jhoicas/inventario-riesgos/internal/application/snapshot"
	"github.com/jhoicas/inventario-riesgos/internal/domain"
	"github.com/jhoicas/inventario-riesgos/pkg/numfmt"
)

const separator = "----------------------------------------"

// Menu lee opciones de in y escribe el resultado en out.
type Menu struct {
	inventory *inventory.TransactionUseCase
	alerts    *alerts.GenerateAlertsUseCase
	snapshot  *snapshot.ExportUseCase

	in  *bufio.Scanner
	out io.Writer
}

// NewMenu construye el menú.
func NewMenu(
	inv *inventory.TransactionUseCase,
	al *alerts.GenerateAlertsUseCase,
	snap *snapshot.ExportUseCase,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{inventory: inv, alerts: al, snapshot: snap, in: bufio.NewScanner(in), out: out}
}

// Run ejecuta el ciclo del menú hasta "Guardar y salir" o fin de la entrada.
// Al llegar a EOF sale sin guardar.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printf("\n1. Entrada mensual\n2. Salida mensual\n3. Mostrar inventario\n4. Generar alertas de riesgo\n5. Guardar y salir\n")
		choice, ok := m.prompt("Seleccione una opción: ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			m.incoming(ctx)
		case "2":
			m.outgoing(ctx)
		case "3":
			m.display(ctx)
		case "4":
			m.generateAlerts(ctx)
		case "5":
			return m.saveAndExit(ctx)
		default:
			m.printf("Opción inválida. Intente de nuevo.\n")
		}
	}
}

func (m *Menu) incoming(ctx context.Context) {
	region, _ := m.prompt("Región: ")
	name, _ := m.prompt("Material: ")
	size, ok := m.promptDecimal("Tamaño del material (m³): ")
	if !ok {
		return
	}
	cost, ok := m.promptDecimal("Costo del material: ")
	if !ok {
		return
	}

	out, err := m.inventory.Incoming(ctx, region, name, size, cost)
	if err != nil {
		m.reportError(region, name, err)
		return
	}
	m.printf("%s almacenado en %s. Espacio disponible: %s m³.\n", name, region, numfmt.Quantity(out.AvailableSpace))
}

func (m *Menu) outgoing(ctx context.Context) {
	region, _ := m.prompt("Región: ")
	name, _ := m.prompt("Material a despachar: ")

	out, err := m.inventory.Outgoing(ctx, region, name)
	if err != nil {
		m.reportError(region, name, err)
		return
	}
	m.printf("%s despachado desde %s. Espacio disponible: %s m³.\n", name, region, numfmt.Quantity(out.AvailableSpace))
}

func (m *Menu) display(ctx context.Context) {
	region, _ := m.prompt("Región a mostrar: ")
	inv, err := m.inventory.Display(ctx, region)
	if err != nil {
		m.reportError(region, "", err)
		return
	}

	m.printf("Región: %s\n", inv.Region)
	m.printf("  Tamaño de bodega: %s m³\n", numfmt.Quantity(inv.WarehouseSize))
	m.printf("  Espacio disponible: %s m³\n", numfmt.Quantity(inv.AvailableSpace))
	m.printf("  Materiales:\n")
	for _, mat := range inv.Materials {
		m.printf("    - %s: tamaño=%s m³, costo=%s\n", mat.Name, numfmt.Quantity(mat.Size), numfmt.Money(mat.Cost))
	}
	m.printf("  Costo total de materiales: %s\n", numfmt.Money(inv.TotalCost))
	m.printf("%s\n", separator)
}

func (m *Menu) generateAlerts(ctx context.Context) {
	var filter dto.AlertFilter
	filter.Region, _ = m.prompt("Región para filtrar (vacío = todas): ")
	filter.Month, _ = m.prompt("Mes para filtrar (vacío = todos): ")

	batch, err := m.alerts.Generate(ctx, filter)
	if err != nil {
		m.printf("No se pudieron generar las alertas: %v\n", err)
		return
	}

	m.printf("Alertas de riesgo:\n")
	for _, it := range batch.Items {
		switch {
		case it.Error != "":
			m.printf("Registro %s/%s no evaluado: %s\n", it.Region, it.Month, it.Error)
		case it.Delivered:
			m.printf("%s\nNotificación enviada.\n", it.Message)
		default:
			m.printf("%s\nNo se pudo enviar la notificación: %s\n", it.Message, it.DeliveryError)
		}
		m.printf("%s\n", separator)
	}
	m.printf("Total: %d, enviadas: %d, fallidas: %d, no evaluables: %d\n",
		batch.Total, batch.Delivered, batch.Failed, batch.Unevaluable)
}

func (m *Menu) saveAndExit(ctx context.Context) error {
	out, err := m.snapshot.Save(ctx)
	if err != nil {
		m.printf("Error guardando el inventario: %v\n", err)
		return err
	}
	m.printf("Inventario guardado (%d filas) en: %s.\n", out.Rows, strings.Join(out.Sinks, ", "))
	m.printf("Saliendo del sistema.\n")
	return nil
}

func (m *Menu) reportError(region, material string, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownRegion):
		m.printf("Región '%s' no encontrada.\n", region)
	case errors.Is(err, domain.ErrInsufficientCapacity):
		m.printf("No hay espacio suficiente en la bodega de '%s'. Riesgo: Stock Overflow.\n", region)
	case errors.Is(err, domain.ErrMaterialNotFound):
		m.printf("Material '%s' no encontrado en la región '%s'.\n", material, region)
	default:
		m.printf("Error: %v\n", err)
	}
}

// ── Entrada ───────────────────────────────────────────────────────────────────

func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptDecimal(label string) (decimal.Decimal, bool) {
	s, ok := m.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		m.printf("Valor numérico inválido: %q\n", s)
		return decimal.Zero, false
	}
	return d, true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
