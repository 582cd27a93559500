package alerts

import (
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-riesgos/internal/domain/entity"
)

// FormatMessage arma el texto que se envía al notificador:
//
//	Region: <región>
//	Month: <mes>
//	Sentiment Score: <puntaje>
//	Comment: <comentario>
//	<línea de sentimiento>
//	[<línea de capacidad>]
func FormatMessage(r entity.AlertResult) string {
	var b strings.Builder
	b.WriteString("Region: " + r.Region + "\n")
	b.WriteString("Month: " + r.Month + "\n")
	b.WriteString("Sentiment Score: " + strconv.FormatFloat(r.SentimentScore, 'f', -1, 64) + "\n")
	b.WriteString("Comment: " + r.Comment + "\n")
	b.WriteString(r.Sentiment.Message())
	if capacity := r.Capacity.Message(r.Region); capacity != "" {
		b.WriteString("\n" + capacity)
	}
	return b.String()
}
