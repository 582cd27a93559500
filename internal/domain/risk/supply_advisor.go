package risk

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-riesgos/internal/domain"
)

// SupplyAction acción recomendada para el abastecimiento de una región-mes.
type SupplyAction string

const (
	ActionIncreaseSupply    SupplyAction = "Increase Supply"
	ActionReduceSupply      SupplyAction = "Reduce Supply"
	ActionMonitor           SupplyAction = "Monitor"
	ActionCriticalAttention SupplyAction = "Critical Attention"
)

// Umbrales de la razón oferta/demanda (límites exclusivos).
var (
	lowSupplyRatio  = decimal.RequireFromString("0.8")
	highSupplyRatio = decimal.RequireFromString("1.2")
)

// SupplyRecommendation acción sugerida y su motivo.
type SupplyRecommendation struct {
	Action SupplyAction
	Ratio  decimal.Decimal // oferta / demanda
	Reason string
}

// RecommendSupply sugiere una acción a partir de la oferta y la demanda:
// razón < 0.8 → Increase Supply; > 1.2 → Reduce Supply; resto → Monitor.
// Un nivel de riesgo "High" o un sentimiento "Negative" (sin distinguir mayúsculas)
// tiene prioridad y da Critical Attention. Demanda ≤ 0 → ErrInvalidInput.
func RecommendSupply(supply, demand decimal.Decimal, riskLevel, sentiment string) (SupplyRecommendation, error) {
	if !demand.IsPositive() || supply.IsNegative() {
		return SupplyRecommendation{}, fmt.Errorf("%w: oferta %s, demanda %s", domain.ErrInvalidInput, supply, demand)
	}
	ratio := supply.Div(demand)
	r := SupplyRecommendation{Ratio: ratio}

	switch {
	case ratio.LessThan(lowSupplyRatio):
		r.Action = ActionIncreaseSupply
		r.Reason = fmt.Sprintf("Low supply (%s), demand exceeds supply.", ratio.StringFixed(2))
	case ratio.GreaterThan(highSupplyRatio):
		r.Action = ActionReduceSupply
		r.Reason = fmt.Sprintf("High supply (%s), oversupply risk.", ratio.StringFixed(2))
	default:
		r.Action = ActionMonitor
		r.Reason = fmt.Sprintf("Balanced supply-demand (%s).", ratio.StringFixed(2))
	}

	if strings.EqualFold(riskLevel, "High") || strings.EqualFold(sentiment, "Negative") {
		r.Action = ActionCriticalAttention
		r.Reason = fmt.Sprintf("%s risk with %s sentiment.", riskLevel, sentiment)
	}
	return r, nil
}
