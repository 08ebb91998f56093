package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// FormatBRL renders an exact amount in Brazilian currency notation:
// R$ 1.234.567,89. The sign sits between the symbol and the digits.
func FormatBRL(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString("R$ ")
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// AbbreviateBRL compacts large amounts for the dashboard cards: R$ 1.23M from
// a million up, R$ 1.23K from a thousand up, full notation below that.
func AbbreviateBRL(v decimal.Decimal) string {
	switch {
	case v.GreaterThanOrEqual(million):
		return "R$ " + v.DivRound(million, 2).StringFixed(2) + "M"
	case v.GreaterThanOrEqual(thousand):
		return "R$ " + v.DivRound(thousand, 2).StringFixed(2) + "K"
	}
	return FormatBRL(v)
}
