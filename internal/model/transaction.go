package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single posting in the ledger (one row in transactions.csv).
// An installment plan or recurring charge produces several of these, linked
// by a shared Reference.
type Transaction struct {
	ID            string // "YYYY-MM-NNN", sequential within the month
	Date          time.Time
	Description   string
	Amount        decimal.Decimal // always positive; Type carries direction
	Type          TxType
	Category      Category
	Bank          Bank
	PaymentMethod PaymentMethod
	Reference     string // shared uuid across postings of one plan
	Recurring     bool
}

// StatementTransaction represents a parsed bank statement row before it is
// categorized and recorded.
type StatementTransaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
	Reference   string
}
