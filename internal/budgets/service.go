// Package budgets manages per-category monthly spending limits.
package budgets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/model"
)

// Service provides in-memory lookup over the configured budgets.
type Service struct {
	budgets []model.Budget
	byCat   map[model.Category]model.Budget
}

// NewService creates a Service from a slice of budgets.
func NewService(budgets []model.Budget) *Service {
	byCat := make(map[model.Category]model.Budget, len(budgets))
	for _, b := range budgets {
		byCat[b.Category] = b
	}
	return &Service{budgets: budgets, byCat: byCat}
}

// Load reads budgets/budgets.csv from the data root and returns a Service.
func Load(root string) (*Service, error) {
	path := filepath.Join(root, "budgets", "budgets.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening budgets: %w", err)
	}
	defer f.Close()

	budgets, err := ReadBudgets(f)
	if err != nil {
		return nil, fmt.Errorf("reading budgets: %w", err)
	}
	return NewService(budgets), nil
}

// Save writes budgets/budgets.csv under the data root.
func (s *Service) Save(root string) error {
	dir := filepath.Join(root, "budgets")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating budgets dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "budgets.csv"))
	if err != nil {
		return fmt.Errorf("creating budgets file: %w", err)
	}
	defer f.Close()

	if err := WriteBudgets(f, s.budgets); err != nil {
		return fmt.Errorf("writing budgets: %w", err)
	}
	return nil
}

// All returns the budgets in configured order.
func (s *Service) All() []model.Budget {
	return s.budgets
}

// Limit returns the limit for a category and whether one is configured.
func (s *Service) Limit(cat model.Category) (decimal.Decimal, bool) {
	b, ok := s.byCat[cat]
	return b.Limit, ok
}

// Status is one category's budget position for a month.
type Status struct {
	Category model.Category
	Spent    decimal.Decimal
	Limit    decimal.Decimal
}

// Exceeded reports whether spending has passed the limit.
func (st Status) Exceeded() bool {
	return st.Spent.GreaterThan(st.Limit)
}

// Statuses compares per-category spending against the configured limits, in
// budget order. Categories without a budget are skipped.
func (s *Service) Statuses(spent map[model.Category]decimal.Decimal) []Status {
	var out []Status
	for _, b := range s.budgets {
		out = append(out, Status{
			Category: b.Category,
			Spent:    spent[b.Category],
			Limit:    b.Limit,
		})
	}
	return out
}
