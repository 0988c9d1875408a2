package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches currency-like tokens: optional R$/$ prefix, digits,
// optional comma or dot decimal with 1-2 fractional digits, optional "k"
// suffix (thousands shorthand).
var amountPattern = regexp.MustCompile(`(?i)(?:R\$|\$)?\s*\d+(?:[.,]\d{1,2})?\s*k?|(?:^|\s)\d+k(?:\s|$)`)

// ExtractNumbers scans text for currency-like numeric tokens and returns the
// parsed values in match order. Tokens that fail to parse are dropped.
func ExtractNumbers(text string) []decimal.Decimal {
	matches := amountPattern.FindAllString(text, -1)
	if matches == nil {
		return nil
	}

	var values []decimal.Decimal
	for _, raw := range matches {
		n := strings.ToLower(raw)
		n = strings.NewReplacer("r$", "", "$", "", " ", "", "\t", "").Replace(n)
		n = strings.TrimSpace(n)

		thousands := false
		if strings.Contains(n, "k") {
			n = strings.ReplaceAll(n, "k", "")
			thousands = true
		}

		switch {
		case strings.Contains(n, ",") && strings.Contains(n, "."):
			// "1.234,56": dot is a thousands separator.
			n = strings.ReplaceAll(n, ".", "")
			n = strings.ReplaceAll(n, ",", ".")
		case strings.Contains(n, ","):
			n = strings.ReplaceAll(n, ",", ".")
		}

		v, err := decimal.NewFromString(n)
		if err != nil {
			continue
		}
		if thousands {
			v = v.Mul(decimal.NewFromInt(1000))
		}
		values = append(values, v)
	}
	return values
}

// maxAmount returns the largest extracted value, so "3x de 50" style phrases
// resolve to the dominant number.
func maxAmount(values []decimal.Decimal) decimal.Decimal {
	max := decimal.Zero
	for _, v := range values {
		if v.GreaterThan(max) {
			max = v
		}
	}
	return max
}
