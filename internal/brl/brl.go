// Package brl formats decimal amounts as Brazilian Real currency strings.
package brl

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders d as a pt-BR currency string, e.g. "R$ 1.234,56".
func Format(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("R$ ")

	// Insert dots as thousands separators.
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(ch)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
