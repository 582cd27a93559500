package risk

import "strings"

// NoSignificantRisk resultado cuando el comentario no menciona ninguna causa conocida.
const NoSignificantRisk = "No significant risk detected."

// keywordRules se evalúan en orden; gana la primera regla con alguna palabra presente.
var keywordRules = []struct {
	keywords []string
	analysis string
}{
	{[]string{"flood", "flooding"}, "Road blockages due to flooding."},
	{[]string{"weather", "adverse"}, "Adverse weather conditions affecting supply."},
	{[]string{"customs", "clearance"}, "Delays due to customs clearance issues."},
	{[]string{"rush", "port"}, "Port congestion causing delays."},
	{[]string{"blockage", "road"}, "Supply disrupted due to road blockages."},
}

// AnalyzeComment deriva el análisis de riesgo de un comentario libre por palabras clave.
// Se usa para completar registros del dataset que llegan sin "Risk Analysis".
func AnalyzeComment(comment string) string {
	lower := strings.ToLower(comment)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.analysis
			}
		}
	}
	return NoSignificantRisk
}
