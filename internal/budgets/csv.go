package budgets

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/model"
)

const (
	numFields   = 2
	colCategory = 0
	colLimit    = 1
)

// ReadBudgets reads budgets.csv.
func ReadBudgets(r io.Reader) ([]model.Budget, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading budgets CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var budgets []model.Budget
	for i, rec := range records[1:] {
		b, err := UnmarshalBudget(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

// WriteBudgets writes budgets.csv.
func WriteBudgets(w io.Writer, budgets []model.Budget) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"category", "monthly_limit"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, b := range budgets {
		if err := cw.Write(MarshalBudget(b)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalBudget converts a Budget to a CSV row.
func MarshalBudget(b model.Budget) []string {
	row := make([]string, numFields)
	row[colCategory] = string(b.Category)
	row[colLimit] = b.Limit.StringFixed(2)
	return row
}

// UnmarshalBudget converts a CSV row to a Budget.
func UnmarshalBudget(record []string) (model.Budget, error) {
	if len(record) != numFields {
		return model.Budget{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	cat := model.Category(record[colCategory])
	if !cat.Valid() {
		return model.Budget{}, fmt.Errorf("unknown category %q", record[colCategory])
	}

	limit, err := decimal.NewFromString(record[colLimit])
	if err != nil {
		return model.Budget{}, fmt.Errorf("parsing limit %q: %w", record[colLimit], err)
	}

	return model.Budget{Category: cat, Limit: limit}, nil
}
