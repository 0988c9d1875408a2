package parser

import (
	"regexp"
	"strings"

	"github.com/finchat-dev/finchat/internal/model"
)

// strictPatterns holds one whole-word pattern per keyword, compiled once
// over every table that feeds the strict scan.
var strictPatterns = buildStrictPatterns()

func buildStrictPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	add := func(keys []string) {
		for _, key := range keys {
			if _, ok := patterns[key]; !ok {
				patterns[key] = regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`)
			}
		}
	}
	for _, group := range categoryGroups {
		add(group.keys)
	}
	add(incomeKeywords)
	add(creditKeywords)
	return patterns
}

// containsKeyword reports whether key matches clean text. Default matching is
// a plain substring test, deliberately without word boundaries; strict mode
// requires whole-word matches.
func containsKeyword(clean, key string, strict bool) bool {
	if !strict {
		return strings.Contains(clean, key)
	}
	re, ok := strictPatterns[key]
	if !ok {
		re = regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`)
	}
	return re.MatchString(clean)
}

// ClassifyCategory scans the category groups in order and returns the first
// group with a keyword hit, plus the keyword that matched. No hit returns
// the zero category and an empty keyword.
func ClassifyCategory(clean string, strict bool) (model.Category, string) {
	for _, group := range categoryGroups {
		for _, key := range group.keys {
			if containsKeyword(clean, key, strict) {
				return group.category, key
			}
		}
	}
	return "", ""
}

// classifyDirection decides income vs expense from keyword cues.
func classifyDirection(clean string, strict bool) model.TxType {
	for _, key := range incomeKeywords {
		if containsKeyword(clean, key, strict) {
			return model.TypeIncome
		}
	}
	return model.TypeExpense
}

// classifyMethod decides debit vs credit. Credit is implied by more than one
// installment or an explicit credit keyword; income is always debit.
func classifyMethod(clean string, txType model.TxType, installments int, strict bool) model.PaymentMethod {
	if txType == model.TypeIncome {
		return model.MethodDebit
	}
	if installments > 1 {
		return model.MethodCredit
	}
	for _, key := range creditKeywords {
		if containsKeyword(clean, key, strict) {
			return model.MethodCredit
		}
	}
	return model.MethodDebit
}

// classifyBank returns the first bank mentioned in text, or fallback.
func classifyBank(clean string, fallback model.Bank) model.Bank {
	for _, bk := range bankKeywords {
		if strings.Contains(clean, bk.key) {
			return bk.bank
		}
	}
	return fallback
}
