package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchat-dev/finchat/internal/model"
)

func sampleTxn() model.Transaction {
	return model.Transaction{
		ID:            "2025-06-001",
		Date:          date(2025, time.June, 15),
		Description:   "mercado, com vírgula",
		Amount:        dec("152.30"),
		Type:          model.TypeExpense,
		Category:      model.CategoryFood,
		Bank:          model.BankItau,
		PaymentMethod: model.MethodDebit,
		Reference:     "ref-1",
		Recurring:     false,
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := []model.Transaction{sampleTxn()}

	require.NoError(t, WriteTransactions(&buf, want))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].Description, got[0].Description, "comma in description survives CSV quoting")
	assert.True(t, want[0].Amount.Equal(got[0].Amount))
	assert.Equal(t, want[0].Category, got[0].Category)
}

func TestReadTransactions_BadRow(t *testing.T) {
	in := Header + "\n2025-06-001,not-a-date,x,10.00,expense,alimentacao,itau,debit,ref,false\n"

	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestUnmarshalTransaction_FieldCount(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"too", "short"})
	require.Error(t, err)
}
