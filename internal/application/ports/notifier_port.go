package ports

import "context"

// Notifier puerto de salida para enviar mensajes de alerta a un canal externo
// (webhook de Slack, log, mock). Un error significa que el mensaje no se entregó;
// el llamador lo reporta y continúa, no hay reintentos.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
