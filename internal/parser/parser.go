// Package parser turns colloquial pt-BR sentences like "Gastei 180 no
// barbeiro parcelado em 3x" into structured transactions. It is a pure,
// single-pass, rule-based pipeline: no state, no I/O, safe for concurrent
// use.
package parser

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/model"
)

// ErrNoAmount is returned when no numeric token is found in the input. It is
// the parser's only failure mode; every other ambiguity resolves to a
// default.
var ErrNoAmount = errors.New("no amount found in text")

// Options configures a Parser.
type Options struct {
	// DefaultBank is used when no bank is mentioned in text.
	DefaultBank model.Bank
	// DefaultExpenseCategory is used when no keyword matches an expense.
	DefaultExpenseCategory model.Category
	// DefaultIncomeCategory is used when no keyword matches an income.
	DefaultIncomeCategory model.Category
	// StrictKeywords enables whole-word keyword matching instead of the
	// default substring scan.
	StrictKeywords bool
	// Now supplies "today" for date resolution; defaults to time.Now.
	Now func() time.Time
}

// Parser extracts structured transactions from free text.
type Parser struct {
	opts Options
}

// Result is one parsed transaction, immutable once produced.
type Result struct {
	Amount        decimal.Decimal // per-posting value, already divided for installment plans
	Category      model.Category
	Description   string
	Bank          model.Bank
	Type          model.TxType
	Date          time.Time
	Installments  int // postings this utterance generates; 1 = one-off
	IsRecurring   bool
	PaymentMethod model.PaymentMethod
	Feedback      string // how amount/date were derived, for echoing back
}

// New creates a Parser. Zero-value options fall back to bank "outros",
// expense category "outros", income category "salario" and time.Now.
func New(opts Options) *Parser {
	if opts.DefaultBank == "" {
		opts.DefaultBank = model.BankOther
	}
	if opts.DefaultExpenseCategory == "" {
		opts.DefaultExpenseCategory = model.CategoryOther
	}
	if opts.DefaultIncomeCategory == "" {
		opts.DefaultIncomeCategory = model.CategorySalary
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Parser{opts: opts}
}

// Parse runs the pipeline: normalize, extract numbers (fail fast if none),
// schedule analysis, direction/method, category, description.
func (p *Parser) Parse(text string) (*Result, error) {
	clean := Normalize(text)

	numbers := ExtractNumbers(text)
	amount := maxAmount(numbers)
	if amount.IsZero() {
		return nil, ErrNoAmount
	}

	sched := analyzeSchedule(clean, amount, p.opts.Now())

	txType := classifyDirection(clean, p.opts.StrictKeywords)
	method := classifyMethod(clean, txType, sched.Installments, p.opts.StrictKeywords)

	category, matched := ClassifyCategory(clean, p.opts.StrictKeywords)
	if category == "" {
		if txType == model.TypeIncome {
			category = p.opts.DefaultIncomeCategory
		} else {
			category = p.opts.DefaultExpenseCategory
		}
	}

	bank := classifyBank(clean, p.opts.DefaultBank)
	description := extractDescription(text, matched, txType)

	return &Result{
		Amount:        sched.FinalAmount,
		Category:      category,
		Description:   description,
		Bank:          bank,
		Type:          txType,
		Date:          sched.Date,
		Installments:  sched.Installments,
		IsRecurring:   sched.IsRecurring,
		PaymentMethod: method,
		Feedback:      sched.Feedback,
	}, nil
}
