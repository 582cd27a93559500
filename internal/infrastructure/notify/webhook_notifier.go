package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/jhoicas/inventario-riesgos/internal/application/ports"
	"github.com/jhoicas/inventario-riesgos/internal/domain"
)

// Verificar en tiempo de compilación que WebhookNotifier implementa Notifier.
var _ ports.Notifier = (*WebhookNotifier)(nil)

// WebhookConfig parámetros del adaptador de webhook.
type WebhookConfig struct {
	URL               string
	Timeout           time.Duration // por llamada; acota un webhook colgado
	RatePerSecond     float64       // 0 = sin límite
	Burst             int
	BreakerFailures   uint32        // fallos consecutivos que abren el circuito; 0 = sin circuito
	BreakerOpenPeriod time.Duration // tiempo en abierto antes de probar de nuevo
}

// WebhookNotifier publica cada mensaje como {"text": mensaje} (formato de Slack incoming webhooks).
// Éxito = respuesta 2xx. No reintenta: con el circuito abierto falla de inmediato.
type WebhookNotifier struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	log        zerolog.Logger
}

// NewWebhookNotifier construye el adaptador.
func NewWebhookNotifier(cfg WebhookConfig, log zerolog.Logger) *WebhookNotifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	n := &WebhookNotifier{
		url:        cfg.URL,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		n.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}
	if cfg.BreakerFailures > 0 {
		failures := cfg.BreakerFailures
		n.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "webhook",
			MaxRequests: 1,
			Timeout:     cfg.BreakerOpenPeriod,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
					Msg("cambio de estado del circuito del webhook")
			},
		})
	}
	return n
}

type webhookPayload struct {
	Text string `json:"text"`
}

// Notify envía el mensaje. Todos los errores envuelven domain.ErrNotificationDeliveryFailure.
func (n *WebhookNotifier) Notify(ctx context.Context, message string) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if n.limiter != nil {
		if err := n.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: límite de envío: %v", domain.ErrNotificationDeliveryFailure, err)
		}
	}

	if n.breaker == nil {
		return n.post(ctx, message)
	}
	_, err := n.breaker.Execute(func() (interface{}, error) {
		return nil, n.post(ctx, message)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: circuito abierto: %v", domain.ErrNotificationDeliveryFailure, err)
	}
	return err
}

func (n *WebhookNotifier) post(ctx context.Context, message string) error {
	body, err := json.Marshal(webhookPayload{Text: message})
	if err != nil {
		return fmt.Errorf("%w: serializar payload: %v", domain.ErrNotificationDeliveryFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: crear HTTP request: %v", domain.ErrNotificationDeliveryFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrNotificationDeliveryFailure, ctx.Err())
		}
		return fmt.Errorf("%w: llamada HTTP fallida: %v", domain.ErrNotificationDeliveryFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return fmt.Errorf("%w: webhook HTTP %d: %s", domain.ErrNotificationDeliveryFailure, resp.StatusCode, string(raw))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	n.log.Debug().Int("status", resp.StatusCode).Msg("notificación enviada")
	return nil
}
