package budgets

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchat-dev/finchat/internal/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()

	svc := NewService(DefaultBudgets())
	require.NoError(t, svc.Save(root))

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultBudgets()), len(loaded.All()))

	limit, ok := loaded.Limit(model.CategoryFood)
	require.True(t, ok)
	assert.True(t, limit.Equal(decimal.NewFromInt(1200)))
}

func TestLimit_Unconfigured(t *testing.T) {
	svc := NewService(DefaultBudgets())

	_, ok := svc.Limit(model.CategoryInvestment)
	assert.False(t, ok)
}

func TestStatuses(t *testing.T) {
	svc := NewService(DefaultBudgets())

	spent := map[model.Category]decimal.Decimal{
		model.CategoryFood:    decimal.NewFromInt(1300),
		model.CategoryLeisure: decimal.NewFromInt(100),
	}

	statuses := svc.Statuses(spent)
	require.Len(t, statuses, len(DefaultBudgets()))

	byCat := make(map[model.Category]Status)
	for _, st := range statuses {
		byCat[st.Category] = st
	}

	assert.True(t, byCat[model.CategoryFood].Exceeded())
	assert.False(t, byCat[model.CategoryLeisure].Exceeded())
	assert.True(t, byCat[model.CategoryHealth].Spent.IsZero())
}

func TestUnmarshalBudget_UnknownCategory(t *testing.T) {
	_, err := UnmarshalBudget([]string{"pets", "100.00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}
