// Package bootstrap arma el grafo de dependencias compartido por la API y la consola.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-riesgos/internal/application/alerts"
	"github.com/jhoicas/inventario-riesgos/internal/application/inventory"
	"github.com/jhoicas/inventario-riesgos/internal/application/ports"
	"github.com/jhoicas/inventario-riesgos/internal/application/snapshot"
	domaininv "github.com/jhoicas/inventario-riesgos/internal/domain/inventory"
	"github.com/jhoicas/inventario-riesgos/internal/infrastructure/csvstore"
	"github.com/jhoicas/inventario-riesgos/internal/infrastructure/metrics"
	"github.com/jhoicas/inventario-riesgos/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/inventario-riesgos/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-riesgos/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-riesgos/pkg/config"
	"github.com/jhoicas/inventario-riesgos/pkg/logger"
)

// App casos de uso listos para una interfaz (HTTP o consola).
type App struct {
	Inventory *inventory.TransactionUseCase
	Alerts    *alerts.GenerateAlertsUseCase
	Snapshot  *snapshot.ExportUseCase
	Metrics   *metrics.Registry
	Store     *domaininv.RegionLedgerStore

	closers []func()
}

// Close libera los recursos externos (pool de PostgreSQL).
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Build carga el dataset analizado, crea un libro por región y conecta los adaptadores.
// Un dataset que no cumple el esquema es un error fatal para el llamador.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	records, err := csvstore.LoadAnalyzedRecords(cfg.Data.AnalyzedCSV)
	if err != nil {
		return nil, err
	}
	regions, err := records.Regions(ctx)
	if err != nil {
		return nil, err
	}
	store := domaininv.NewRegionLedgerStore(regions, cfg.Inventory.DefaultWarehouseSize)
	log.Info().
		Str("file", cfg.Data.AnalyzedCSV).
		Int("regions", len(store.Regions())).
		Str("warehouse_size", cfg.Inventory.DefaultWarehouseSize.String()).
		Msg("libros de inventario inicializados")

	app := &App{Store: store, Metrics: metrics.NewRegistry()}

	sinks := []snapshot.Sink{{Name: "csv", Repo: csvstore.NewSnapshotRepository(cfg.Data.SnapshotCSV)}}
	if cfg.DB.SnapshotEnabled {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		app.closers = append(app.closers, pool.Close)

		repo := postgres.NewSnapshotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			app.Close()
			return nil, fmt.Errorf("esquema de snapshots: %w", err)
		}
		sinks = append(sinks, snapshot.Sink{Name: "postgres", Repo: repo})
	}

	app.Inventory = inventory.NewTransactionUseCase(store, app.Metrics, log.Component("inventory"))
	app.Alerts = alerts.NewGenerateAlertsUseCase(records, store, newNotifier(cfg.Notifier, log), app.Metrics, log.Component("alerts"))
	app.Snapshot = snapshot.NewExportUseCase(
		store, sinks,
		infrapdf.NewMarotoReportGenerator("Inventario por región"),
		app.Metrics, log.Component("snapshot"),
	)
	return app, nil
}

func newNotifier(cfg config.NotifierConfig, log *logger.Logger) ports.Notifier {
	if cfg.WebhookURL != "" {
		return notify.NewWebhookNotifier(webhookConfig(cfg), log.Component("notifier"))
	}
	log.Warn().Msg("NOTIFIER_WEBHOOK_URL vacío: las alertas solo se registran en el log")
	return notify.NewLogNotifier(log.Component("notifier"))
}

// webhookConfig traduce la configuración del proceso a la del adaptador.
func webhookConfig(cfg config.NotifierConfig) notify.WebhookConfig {
	failures := uint32(0)
	if cfg.BreakerFailures > 0 {
		failures = uint32(cfg.BreakerFailures)
	}
	return notify.WebhookConfig{
		URL:               cfg.WebhookURL,
		Timeout:           cfg.Timeout,
		RatePerSecond:     cfg.RatePerSecond,
		Burst:             cfg.Burst,
		BreakerFailures:   failures,
		BreakerOpenPeriod: cfg.BreakerOpenPeriod,
	}
}
