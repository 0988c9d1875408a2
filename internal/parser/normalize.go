package parser

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and drops combining marks, so "conexão"
// becomes "conexao".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text and removes diacritics. All keyword matching
// runs against normalized text.
func Normalize(text string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(text))
	if err != nil {
		// The transform chain is total over valid UTF-8; on malformed
		// input fall back to the lowercased original.
		return strings.ToLower(text)
	}
	return out
}
