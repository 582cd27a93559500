package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-riesgos/internal/bootstrap"
	httpRouter "github.com/jhoicas/inventario-riesgos/internal/interfaces/http"
	"github.com/jhoicas/inventario-riesgos/pkg/config"
	"github.com/jhoicas/inventario-riesgos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	app, err := bootstrap.Build(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicialización")
	}
	defer app.Close()

	server := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // GET /api/alerts espera la entrega de todo el lote
		IdleTimeout:  time.Second * 60,
	})
	server.Use(recover.New())

	httpRouter.Router(server, httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		Inventory: app.Inventory,
		Alerts:    app.Alerts,
		Snapshot:  app.Snapshot,
		Metrics:   app.Metrics.Handler(),
	})

	go func() {
		if err := server.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	// Último snapshot con el estado final de los libros.
	if _, err := app.Snapshot.Save(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("snapshot final")
	}

	log.Info().Msg("aplicación detenida")
}
