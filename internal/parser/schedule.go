package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/brl"
)

// recurringMonths caps an open-ended recurring charge at 12 occurrences.
const recurringMonths = 12

// installmentPattern matches explicit installment counts: "3x", "3 vezes",
// "5 parcelas".
var installmentPattern = regexp.MustCompile(`(\d+)\s*(?:x|vezes|parcelas)`)

// Schedule is the outcome of payment/schedule analysis: how many postings
// one utterance generates, the per-posting amount and the anchor date.
type Schedule struct {
	Installments int
	IsRecurring  bool
	FinalAmount  decimal.Decimal
	Date         time.Time
	Feedback     string
}

// analyzeSchedule derives the posting schedule from normalized text and the
// raw extracted amount. Priority: month anchoring always runs first, then
// recurrence short-circuits, then explicit installment counts.
func analyzeSchedule(clean string, rawAmount decimal.Decimal, now time.Time) Schedule {
	sched := Schedule{
		Installments: 1,
		FinalAmount:  rawAmount,
		Date:         now,
	}

	// A month name anchors the posting date to day 5 of its nearest future
	// (or current) occurrence, independent of the branches below.
	for i, name := range monthNames {
		if strings.Contains(clean, name) {
			year := now.Year()
			if i < int(now.Month())-1 {
				year++
			}
			sched.Date = time.Date(year, time.Month(i+1), 5, 0, 0, 0, 0, now.Location())
			break
		}
	}

	for _, key := range recurrenceKeywords {
		if strings.Contains(clean, key) {
			sched.IsRecurring = true
			sched.Installments = recurringMonths
			sched.Feedback = "Recorrência mensal identificada."
			return sched
		}
	}

	if m := installmentPattern.FindStringSubmatch(clean); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			sched.Installments = n
			if strings.Contains(clean, " de ") && strings.Contains(clean, "parcelas") {
				// "N parcelas de X": the amount is already per installment.
				sched.Feedback = fmt.Sprintf("%d parcelas de %s.", n, brl.Format(sched.FinalAmount))
			} else {
				sched.FinalAmount = rawAmount.Div(decimal.NewFromInt(int64(n)))
				sched.Feedback = fmt.Sprintf("Total dividido em %dx de %s.", n, brl.Format(sched.FinalAmount))
			}
		}
		return sched
	}

	return sched
}
