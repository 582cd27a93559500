package ports

// MetricsRecorder puerto para contadores operativos. Las etiquetas son valores cortos
// ("incoming", "ok", "HIGH_RISK", ...).
type MetricsRecorder interface {
	Transaction(kind, result string)
	Alert(sentiment, capacity string)
	Notification(result string)
	SnapshotRows(n int)
}

// NopMetrics implementación vacía para tests y herramientas.
type NopMetrics struct{}

func (NopMetrics) Transaction(string, string) {}
func (NopMetrics) Alert(string, string)       {}
func (NopMetrics) Notification(string)        {}
func (NopMetrics) SnapshotRows(int)           {}
