package entity

import "github.com/shopspring/decimal"

// SentimentTier nivel de riesgo derivado del puntaje de sentimiento.
type SentimentTier string

const (
	SentimentHighRisk SentimentTier = "HIGH_RISK"
	SentimentModerate SentimentTier = "MODERATE"
	SentimentLow      SentimentTier = "LOW"
)

// Message texto de la alerta de sentimiento.
func (t SentimentTier) Message() string {
	switch t {
	case SentimentHighRisk:
		return "🚨 Alert: High risk of supply chain disruption!"
	case SentimentModerate:
		return "⚠️ Warning: Moderate risk. Closely monitor the situation."
	default:
		return "✅ Status: Low risk."
	}
}

// CapacityTier nivel de riesgo derivado del espacio disponible de la bodega.
type CapacityTier string

const (
	CapacityNone             CapacityTier = "NONE"
	CapacityCriticalShortage CapacityTier = "CRITICAL_SHORTAGE"
	CapacityEmpty            CapacityTier = "EMPTY"
	CapacityOverflow         CapacityTier = "OVERFLOW"
	CapacityEmptyNoStock     CapacityTier = "EMPTY_NO_STOCK"
)

// Message texto de la alerta de capacidad para la región; vacío si no hay alerta.
func (t CapacityTier) Message(region string) string {
	switch t {
	case CapacityCriticalShortage:
		return "⚠️ Alert: Stock Shortage! Critical space available in " + region + "."
	case CapacityEmpty:
		return "🚨 Alert: High Risk! Warehouse in " + region + " is empty. Immediate restocking required."
	case CapacityOverflow:
		return "⚠️ Alert: Stock Overflow! Exceeded space capacity in " + region + "."
	case CapacityEmptyNoStock:
		return "⚠️ Risk: Empty warehouse in " + region + ". No stock available!"
	default:
		return ""
	}
}

// AlertResult alerta combinada (sentimiento + capacidad) para un registro región-mes.
type AlertResult struct {
	Region         string
	Month          string
	Year           int
	Comment        string
	RiskAnalysis   string
	SentimentScore float64
	Sentiment      SentimentTier
	Capacity       CapacityTier
	AvailableSpace decimal.Decimal
	WarehouseSize  decimal.Decimal
}
