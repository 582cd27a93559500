// Package metrics expone contadores operativos en formato Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/inventario-riesgos/internal/application/ports"
)

const namespace = "inventario_riesgos"

var _ ports.MetricsRecorder = (*Registry)(nil)

// Registry agrupa los contadores sobre un registro privado (no el global de Prometheus),
// así cada proceso o test tiene su propio conjunto.
type Registry struct {
	reg *prometheus.Registry

	Transactions  *prometheus.CounterVec
	Alerts        *prometheus.CounterVec
	Notifications *prometheus.CounterVec
	SnapshotSaves prometheus.Counter
	SnapshotRowsG prometheus.Gauge
}

// NewRegistry crea y registra todos los contadores.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		Transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_total",
				Help:      "Transacciones de inventario por tipo y resultado",
			},
			[]string{"kind", "result"},
		),
		Alerts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_total",
				Help:      "Alertas evaluadas por nivel de sentimiento y de capacidad",
			},
			[]string{"sentiment", "capacity"},
		),
		Notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Intentos de notificación por resultado",
			},
			[]string{"result"},
		),
		SnapshotSaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_saves_total",
			Help:      "Snapshots de inventario guardados",
		}),
		SnapshotRowsG: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_rows",
			Help:      "Filas escritas en el último snapshot",
		}),
	}

	r.reg.MustRegister(
		r.Transactions,
		r.Alerts,
		r.Notifications,
		r.SnapshotSaves,
		r.SnapshotRowsG,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Registry) Transaction(kind, result string) {
	r.Transactions.WithLabelValues(kind, result).Inc()
}

func (r *Registry) Alert(sentiment, capacity string) {
	r.Alerts.WithLabelValues(sentiment, capacity).Inc()
}

func (r *Registry) Notification(result string) {
	r.Notifications.WithLabelValues(result).Inc()
}

func (r *Registry) SnapshotRows(n int) {
	r.SnapshotSaves.Inc()
	r.SnapshotRowsG.Set(float64(n))
}

// Handler devuelve el handler HTTP de exposición (/metrics).
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
