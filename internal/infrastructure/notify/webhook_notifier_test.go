package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-riesgos/internal/domain"
	"github.com/jhoicas/inventario-riesgos/internal/infrastructure/notify"
)

func TestWebhookNotifier_EnviaTextoJSON(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(notify.WebhookConfig{URL: srv.URL}, zerolog.Nop())
	require.NoError(t, n.Notify(context.Background(), "Region: North\n🚨 Alert"))
	assert.Equal(t, map[string]string{"text": "Region: North\n🚨 Alert"}, got)
}

func TestWebhookNotifier_EstadoNo2xxEsFallo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("invalid_token"))
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(notify.WebhookConfig{URL: srv.URL}, zerolog.Nop())
	err := n.Notify(context.Background(), "hola")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotificationDeliveryFailure)
	assert.Contains(t, err.Error(), "403")
}

func TestWebhookNotifier_TimeoutAcotaWebhookColgado(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	n := notify.NewWebhookNotifier(notify.WebhookConfig{URL: srv.URL, Timeout: 50 * time.Millisecond}, zerolog.Nop())
	start := time.Now()
	err := n.Notify(context.Background(), "hola")
	assert.ErrorIs(t, err, domain.ErrNotificationDeliveryFailure)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestWebhookNotifier_CircuitoAbiertoNoLlamaAlServidor(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := notify.NewWebhookNotifier(notify.WebhookConfig{
		URL:               srv.URL,
		BreakerFailures:   2,
		BreakerOpenPeriod: time.Minute,
	}, zerolog.Nop())

	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, n.Notify(context.Background(), "x"), domain.ErrNotificationDeliveryFailure)
	}
	err := n.Notify(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotificationDeliveryFailure)
	assert.Contains(t, err.Error(), "circuito abierto")
	assert.Equal(t, int32(2), calls.Load(), "con el circuito abierto no se reintenta")
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, notify.NewLogNotifier(zerolog.Nop()).Notify(context.Background(), "x"))
}
