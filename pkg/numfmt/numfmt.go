// Package numfmt formatea cantidades y montos para salidas legibles (consola, PDF).
//
// El formato parte de la representación decimal exacta (StringFixed), no de float64,
// así los montos grandes no pierden dígitos.
package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity formatea con separador de miles y hasta dos decimales: 1234.5 → "1,234.5".
func Quantity(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return group(s)
}

// Money formatea un monto con dos decimales y signo: -1234.5 → "-$1,234.50".
func Money(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	if d.Round(2).IsNegative() {
		return "-$" + group(s)
	}
	return "$" + group(s)
}

// group inserta comas cada tres dígitos en la parte entera de s ("-1234.5" → "-1,234.5").
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteString("." + frac)
	}
	return b.String()
}
