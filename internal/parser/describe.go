package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/finchat-dev/finchat/internal/model"
)

// descAmountPattern strips numeric tokens out of the original text when
// deriving a description.
var descAmountPattern = regexp.MustCompile(`(?i)(?:R\$|\$)?\s*\d+(?:[.,]\d{1,2})?k?`)

// stopWordPatterns is built once from the stop-word list; whole-word,
// case-insensitive.
var stopWordPatterns = buildStopWordPatterns()

func buildStopWordPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(stopWords))
	for i, w := range stopWords {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(w) + `\b`)
	}
	return patterns
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// extractDescription derives a human-readable label from the original
// (non-normalized) text: numeric tokens and stop words removed, whitespace
// collapsed. Results shorter than 3 characters fall back to the matched
// category keyword, or to a generic label by direction.
func extractDescription(text, matchedKeyword string, txType model.TxType) string {
	desc := descAmountPattern.ReplaceAllString(text, "")
	for _, p := range stopWordPatterns {
		desc = p.ReplaceAllString(desc, "")
	}
	desc = strings.TrimSpace(whitespacePattern.ReplaceAllString(desc, " "))

	if utf8.RuneCountInString(desc) < 3 {
		if matchedKeyword != "" {
			return matchedKeyword
		}
		if txType == model.TypeIncome {
			return "Entrada"
		}
		return "Saída"
	}
	return desc
}
