package risk

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
)

// Umbrales de sentimiento. La banda moderada es estrecha y asimétrica: [0.50, 0.52].
const (
	HighRiskBelow   = 0.50
	ModerateUpTo    = 0.52
	criticalPercent = "0.1"
)

var criticalRatio = decimal.RequireFromString(criticalPercent)

// ClassifySentiment clasifica el puntaje de sentimiento (servicio de dominio).
// score < 0.50 → HighRisk; 0.50 ≤ score ≤ 0.52 → Moderate; resto → Low.
func ClassifySentiment(score float64) entity.SentimentTier {
	switch {
	case score < HighRiskBelow:
		return entity.SentimentHighRisk
	case score <= ModerateUpTo:
		return entity.SentimentModerate
	default:
		return entity.SentimentLow
	}
}

// ClassifyCapacity clasifica el espacio disponible frente al tamaño de la bodega.
// Gana la primera condición que se cumpla, en este orden:
//  1. 0 < disponible ≤ 10% del tamaño → CriticalShortage
//  2. disponible == 0                 → Empty
//  3. disponible < 0                  → Overflow
//  4. disponible == tamaño            → EmptyNoStock
//  5. resto                           → None
func ClassifyCapacity(available, warehouseSize decimal.Decimal) entity.CapacityTier {
	switch {
	case available.IsPositive() && available.LessThanOrEqual(warehouseSize.Mul(criticalRatio)):
		return entity.CapacityCriticalShortage
	case available.IsZero():
		return entity.CapacityEmpty
	case available.IsNegative():
		return entity.CapacityOverflow
	case available.Equal(warehouseSize):
		return entity.CapacityEmptyNoStock
	default:
		return entity.CapacityNone
	}
}
