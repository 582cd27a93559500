package entity

// AnalyzedRecord fila del dataset analizado (región-mes) con el sentimiento y el
// análisis de riesgo calculados externamente. Solo lectura para el núcleo.
type AnalyzedRecord struct {
	Region         string
	Month          string
	Year           int
	Comment        string
	SentimentLabel string
	SentimentScore float64 // [0, 1]
	RiskAnalysis   string
}
