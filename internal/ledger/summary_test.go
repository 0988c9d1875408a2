package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finchat-dev/finchat/internal/model"
)

func TestSummarize(t *testing.T) {
	txns := []model.Transaction{
		{Type: model.TypeIncome, Amount: dec("3000"), Bank: model.BankItau, Category: model.CategorySalary, PaymentMethod: model.MethodDebit},
		{Type: model.TypeExpense, Amount: dec("500"), Bank: model.BankItau, Category: model.CategoryFood, PaymentMethod: model.MethodDebit},
		{Type: model.TypeExpense, Amount: dec("200"), Bank: model.BankNubank, Category: model.CategoryLeisure, PaymentMethod: model.MethodCredit},
	}

	sum := Summarize(txns)

	assert.True(t, sum.TotalIncome.Equal(dec("3000")))
	assert.True(t, sum.TotalExpenses.Equal(dec("700")))
	assert.True(t, sum.Balance.Equal(dec("2300")))

	// Debit expense deducts from the bank balance.
	assert.True(t, sum.BankBalances[model.BankItau].Equal(dec("2500")))
	// Credit expense accumulates in the card bill, not the balance.
	assert.True(t, sum.CreditCardBills[model.BankNubank].Equal(dec("200")))
	assert.True(t, sum.BankBalances[model.BankNubank].IsZero())

	assert.True(t, sum.CategoryTotals[model.CategoryFood].Equal(dec("500")))
	assert.True(t, sum.CategoryTotals[model.CategoryLeisure].Equal(dec("200")))
}

func TestCategoryTotals_MonthScoped(t *testing.T) {
	svc := NewService(t.TempDir())

	_, err := svc.Record(oneOff("junho", "100", date(2025, time.June, 1)))
	assert.NoError(t, err)
	_, err = svc.Record(oneOff("julho", "50", date(2025, time.July, 1)))
	assert.NoError(t, err)

	totals, err := svc.CategoryTotals(2025, 6)
	assert.NoError(t, err)
	assert.True(t, totals[model.CategoryFood].Equal(dec("100")))
}
