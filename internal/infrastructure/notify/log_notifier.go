package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/inventario-riesgos/internal/application/ports"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier escribe las alertas en el log. Se usa cuando no hay webhook configurado.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify nunca falla.
func (n *LogNotifier) Notify(_ context.Context, message string) error {
	n.log.Info().Str("alert", message).Msg("alerta de riesgo")
	return nil
}
