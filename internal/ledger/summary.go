package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/model"
)

// Summary aggregates the whole ledger the way the dashboard consumes it:
// consolidated totals, per-bank balances, open credit-card bills and
// per-category expense totals.
type Summary struct {
	TotalIncome     decimal.Decimal                    `json:"total_income"`
	TotalExpenses   decimal.Decimal                    `json:"total_expenses"`
	Balance         decimal.Decimal                    `json:"balance"`
	BankBalances    map[model.Bank]decimal.Decimal     `json:"bank_balances"`
	CreditCardBills map[model.Bank]decimal.Decimal     `json:"credit_card_bills"`
	CategoryTotals  map[model.Category]decimal.Decimal `json:"category_totals"`
}

// Summarize computes a Summary over txns. Income always lands in the bank
// balance; debit expenses deduct from it; credit expenses accumulate in the
// bank's bill instead.
func Summarize(txns []model.Transaction) Summary {
	sum := Summary{
		BankBalances:    make(map[model.Bank]decimal.Decimal),
		CreditCardBills: make(map[model.Bank]decimal.Decimal),
		CategoryTotals:  make(map[model.Category]decimal.Decimal),
	}

	for _, txn := range txns {
		if txn.Type == model.TypeIncome {
			sum.TotalIncome = sum.TotalIncome.Add(txn.Amount)
			sum.BankBalances[txn.Bank] = sum.BankBalances[txn.Bank].Add(txn.Amount)
			continue
		}

		sum.TotalExpenses = sum.TotalExpenses.Add(txn.Amount)
		sum.CategoryTotals[txn.Category] = sum.CategoryTotals[txn.Category].Add(txn.Amount)
		if txn.PaymentMethod == model.MethodCredit {
			sum.CreditCardBills[txn.Bank] = sum.CreditCardBills[txn.Bank].Add(txn.Amount)
		} else {
			sum.BankBalances[txn.Bank] = sum.BankBalances[txn.Bank].Sub(txn.Amount)
		}
	}

	sum.Balance = sum.TotalIncome.Sub(sum.TotalExpenses)
	return sum
}

// Summary reads the whole ledger and aggregates it.
func (s *Service) Summary() (Summary, error) {
	txns, err := s.ReadAll()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(txns), nil
}

// CategoryTotals returns per-category expense totals for one month, for
// budget tracking.
func (s *Service) CategoryTotals(year, month int) (map[model.Category]decimal.Decimal, error) {
	txns, err := s.ReadMonth(year, month)
	if err != nil {
		return nil, err
	}

	totals := make(map[model.Category]decimal.Decimal)
	for _, txn := range txns {
		if txn.Type != model.TypeExpense {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals, nil
}
