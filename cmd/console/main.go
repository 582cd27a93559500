package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-riesgos/internal/bootstrap"
	"github.com/jhoicas/inventario-riesgos/internal/interfaces/console"
	"github.com/jhoicas/inventario-riesgos/pkg/config"
	"github.com/jhoicas/inventario-riesgos/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataFile     string
		snapshotFile string
		webhookURL   string
	)

	cmd := &cobra.Command{
		Use:          "console",
		Short:        "Menú interactivo de inventario regional y alertas de riesgo",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			if cmd.Flags().Changed("data") {
				cfg.Data.AnalyzedCSV = dataFile
			}
			if cmd.Flags().Changed("snapshot") {
				cfg.Data.SnapshotCSV = snapshotFile
			}
			if cmd.Flags().Changed("webhook") {
				cfg.Notifier.WebhookURL = webhookURL
			}

			// Los logs van a stderr para no mezclarse con el menú.
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Output: cmd.ErrOrStderr()})

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			app, err := bootstrap.Build(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer app.Close()

			return console.NewMenu(app.Inventory, app.Alerts, app.Snapshot, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "CSV analizado (sobrescribe DATA_ANALYZED_CSV)")
	cmd.Flags().StringVar(&snapshotFile, "snapshot", "", "CSV de snapshot (sobrescribe DATA_SNAPSHOT_CSV)")
	cmd.Flags().StringVar(&webhookURL, "webhook", "", "URL del webhook de alertas (sobrescribe NOTIFIER_WEBHOOK_URL)")
	return cmd
}
