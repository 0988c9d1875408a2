package budgets

import (
	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/model"
)

// DefaultBudgets returns the starter limits a new data directory ships with.
func DefaultBudgets() []model.Budget {
	return []model.Budget{
		{Category: model.CategoryFood, Limit: decimal.NewFromInt(1200)},
		{Category: model.CategoryTransport, Limit: decimal.NewFromInt(600)},
		{Category: model.CategoryHousing, Limit: decimal.NewFromInt(2000)},
		{Category: model.CategoryLeisure, Limit: decimal.NewFromInt(500)},
		{Category: model.CategoryHealth, Limit: decimal.NewFromInt(400)},
		{Category: model.CategoryEducation, Limit: decimal.NewFromInt(300)},
	}
}
