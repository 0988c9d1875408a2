package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchat-dev/finchat/internal/model"
)

// testNow pins "today" to a Sunday in mid-June so month-rollover behavior is
// deterministic.
var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestParser() *Parser {
	return New(Options{
		DefaultBank: model.BankItau,
		Now:         func() time.Time { return testNow },
	})
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParse_NoAmount(t *testing.T) {
	p := newTestParser()

	for _, text := range []string{"", "gastei no mercado", "qual meu saldo?"} {
		_, err := p.Parse(text)
		assert.ErrorIs(t, err, ErrNoAmount, "input %q", text)
	}
}

func TestParse_Idempotent(t *testing.T) {
	p := newTestParser()

	first, err := p.Parse("Gastei 180 no barbeiro parcelado em 3x")
	require.NoError(t, err)
	second, err := p.Parse("Gastei 180 no barbeiro parcelado em 3x")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParse_MaxAmountSelection(t *testing.T) {
	p := newTestParser()

	res, err := p.Parse("50 e depois 120")
	require.NoError(t, err)
	assert.True(t, res.Amount.Equal(dec("120")), "got %s", res.Amount)
}

func TestParse_InstallmentDivision(t *testing.T) {
	p := newTestParser()

	res, err := p.Parse("600 em 3x")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Installments)
	assert.True(t, res.Amount.Equal(dec("200")), "got %s", res.Amount)
	assert.Equal(t, model.MethodCredit, res.PaymentMethod)
	assert.False(t, res.IsRecurring)
}

func TestParse_FixedInstallmentPhrasing(t *testing.T) {
	p := newTestParser()

	// "N parcelas de X" means X is already per installment: not divided again.
	res, err := p.Parse("3 parcelas de 200")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Installments)
	assert.True(t, res.Amount.Equal(dec("200")), "got %s", res.Amount)
	assert.Equal(t, model.MethodCredit, res.PaymentMethod)
}

func TestParse_RecurrenceShortCircuit(t *testing.T) {
	p := newTestParser()

	res, err := p.Parse("assinatura de 39,90 todo mes")
	require.NoError(t, err)
	assert.True(t, res.IsRecurring)
	assert.Equal(t, 12, res.Installments)
	assert.True(t, res.Amount.Equal(dec("39.90")), "got %s", res.Amount)
	assert.Equal(t, "Recorrência mensal identificada.", res.Feedback)
}

func TestParse_IncomeForcesDebit(t *testing.T) {
	p := newTestParser()

	res, err := p.Parse("recebi 3000 de salario")
	require.NoError(t, err)
	assert.Equal(t, model.TypeIncome, res.Type)
	assert.Equal(t, model.MethodDebit, res.PaymentMethod)
	assert.Equal(t, model.CategorySalary, res.Category)
}

func TestParse_ThousandsShorthand(t *testing.T) {
	p := newTestParser()

	res, err := p.Parse("ganhei 5k")
	require.NoError(t, err)
	assert.True(t, res.Amount.Equal(dec("5000")), "got %s", res.Amount)
	assert.Equal(t, model.TypeIncome, res.Type)
}

func TestParse_CategoryPrecedence(t *testing.T) {
	p := newTestParser()

	// "uber" (transporte) and "hospital"-adjacent keywords may both be
	// present; the transporte group is scanned first, so it wins.
	res, err := p.Parse("gastei 50 no uber para o hospital")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryTransport, res.Category)
}

func TestParse_AccentedKeywordNeverMatches(t *testing.T) {
	p := newTestParser()

	// The saude table carries "obturação" with its diacritics, but matching
	// runs on normalized text, so that key can never hit. The scan falls
	// through to the casa group, whose "racao" is a substring of
	// "obturacao".
	res, err := p.Parse("paguei 200 na obturacao")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryHousing, res.Category)
}

func TestParse_MonthAnchorsDate(t *testing.T) {
	p := newTestParser()

	// Fevereiro is behind June, so it rolls to next year, day 5.
	res, err := p.Parse("minha fatura de fevereiro e 345")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC), res.Date)
	assert.Equal(t, model.MethodCredit, res.PaymentMethod, "fatura implies credit")

	// Agosto is ahead of June: same year.
	res, err = p.Parse("paguei 90 em agosto")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC), res.Date)
}

func TestParse_MonthAndInstallmentsAreIndependent(t *testing.T) {
	p := newTestParser()

	res, err := p.Parse("gastei 300 parcelado em 3x para julho")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC), res.Date)
	assert.Equal(t, 3, res.Installments)
	assert.True(t, res.Amount.Equal(dec("100")), "got %s", res.Amount)
}

func TestParse_DefaultDateIsToday(t *testing.T) {
	p := newTestParser()

	res, err := p.Parse("gastei 50 no mercado")
	require.NoError(t, err)
	assert.Equal(t, testNow, res.Date)
}

func TestParse_DescriptionFallback(t *testing.T) {
	p := newTestParser()

	// A bare number leaves nothing to describe: generic label by direction.
	res, err := p.Parse("50")
	require.NoError(t, err)
	assert.Equal(t, "Saída", res.Description)

	res, err = p.Parse("recebi 50")
	require.NoError(t, err)
	assert.Equal(t, model.TypeIncome, res.Type)
	assert.NotEmpty(t, res.Description)
}

func TestParse_BankDetection(t *testing.T) {
	p := newTestParser()

	res, err := p.Parse("paguei 100 no nubank")
	require.NoError(t, err)
	assert.Equal(t, model.BankNubank, res.Bank)

	// No bank mentioned: configured default.
	res, err = p.Parse("paguei 100 no mercado")
	require.NoError(t, err)
	assert.Equal(t, model.BankItau, res.Bank)
}

func TestParse_StrictKeywords(t *testing.T) {
	loose := newTestParser()
	strict := New(Options{
		DefaultBank:    model.BankItau,
		StrictKeywords: true,
		Now:            func() time.Time { return testNow },
	})

	// "tenista" contains "tenis" as a substring; only the loose scan hits it.
	res, err := loose.Parse("gastei 30 em tenista")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryLeisure, res.Category)

	res, err = strict.Parse("gastei 30 em tenista")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryOther, res.Category)
}

func TestStrictPatternsCoverKeywordTables(t *testing.T) {
	for _, group := range categoryGroups {
		for _, key := range group.keys {
			assert.Contains(t, strictPatterns, key)
		}
	}
	for _, key := range incomeKeywords {
		assert.Contains(t, strictPatterns, key)
	}
	for _, key := range creditKeywords {
		assert.Contains(t, strictPatterns, key)
	}
}

func TestParse_EndToEnd(t *testing.T) {
	p := newTestParser()

	res, err := p.Parse("Gastei 180 no barbeiro parcelado em 3x")
	require.NoError(t, err)
	assert.True(t, res.Amount.Equal(dec("60")), "got %s", res.Amount)
	assert.Equal(t, model.CategoryHealth, res.Category)
	assert.Equal(t, model.TypeExpense, res.Type)
	assert.Equal(t, model.MethodCredit, res.PaymentMethod)
	assert.Equal(t, 3, res.Installments)
	assert.False(t, res.IsRecurring)
	assert.Contains(t, res.Description, "barbeiro")
	assert.Equal(t, testNow, res.Date)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "conexao", Normalize("Conexão"))
	assert.Equal(t, "cartao de credito", Normalize("CARTÃO de CRÉDITO"))
	assert.Equal(t, "marco", Normalize("Março"))
}

func TestExtractNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"gastei 50", []string{"50"}},
		{"R$ 39,90 de assinatura", []string{"39.90"}},
		// The token pattern caps the decimal part at 2 digits, so a
		// thousands-formatted value splits into two tokens.
		{"1.234,56 no total", []string{"1.23", "4.56"}},
		{"uns 2k no conserto", []string{"2000"}},
		{"50 e depois 120", []string{"50", "120"}},
		{"nada numerico aqui", nil},
	}

	for _, tc := range cases {
		got := ExtractNumbers(tc.in)
		require.Len(t, got, len(tc.want), "input %q: %v", tc.in, got)
		for i := range tc.want {
			assert.True(t, got[i].Equal(dec(tc.want[i])), "input %q token %d: got %s", tc.in, i, got[i])
		}
	}
}
