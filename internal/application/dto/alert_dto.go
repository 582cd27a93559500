package dto

import "github.com/shopspring/decimal"

// AlertFilter filtros opcionales de la evaluación; vacío = sin filtro.
type AlertFilter struct {
	Region string `query:"region"`
	Month  string `query:"month"`
}

// AlertItemDTO resultado de un registro evaluado y su entrega al notificador.
type AlertItemDTO struct {
	Region         string          `json:"region"`
	Month          string          `json:"month"`
	Year           int             `json:"year"`
	SentimentScore float64         `json:"sentiment_score"`
	Sentiment      string          `json:"sentiment"`
	Capacity       string          `json:"capacity"`
	AvailableSpace decimal.Decimal `json:"available_space"`
	WarehouseSize  decimal.Decimal `json:"warehouse_size"`
	RiskAnalysis   string          `json:"risk_analysis"`
	Message        string          `json:"message,omitempty"`
	Delivered      bool            `json:"delivered"`
	DeliveryError  string          `json:"delivery_error,omitempty"`
	Error          string          `json:"error,omitempty"` // registro no evaluable (ej. región sin libro)
}

// AlertBatchDTO resultado de una ejecución de GenerateAlerts.
type AlertBatchDTO struct {
	ID          string         `json:"id"`
	Total       int            `json:"total"`
	Delivered   int            `json:"delivered"`
	Failed      int            `json:"failed"`
	Unevaluable int            `json:"unevaluable"`
	Items       []AlertItemDTO `json:"items"`
}
