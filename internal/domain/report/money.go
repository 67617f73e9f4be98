package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount as whole rupiah with dot thousand separators, e.g. "Rp 1.234.567".
// Fractions are rounded half away from zero.
func FormatRupiah(amount decimal.Decimal) string {
	digits := amount.Round(0).String()
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString("Rp ")
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
