package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/id"
	"github.com/finchat-dev/finchat/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	PostingID   string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.PostingID, e.Description)
}

// ValidateTransactions enforces 6 invariants on a month's postings.
func ValidateTransactions(txns []model.Transaction, year, month int) []ValidationError {
	var errs []ValidationError

	hundred := decimal.NewFromInt(100)
	for _, txn := range txns {
		// Invariant 1: Positive amount.
		if !txn.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Invariant:   1,
				PostingID:   txn.ID,
				Description: fmt.Sprintf("amount %s is not positive", txn.Amount),
			})
		}

		// Invariant 2: At most 2 decimal places.
		if !txn.Amount.Mul(hundred).Equal(txn.Amount.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Invariant:   2,
				PostingID:   txn.ID,
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", txn.Amount),
			})
		}

		// Invariant 3: Known vocabulary values.
		if !txn.Category.Valid() {
			errs = append(errs, ValidationError{
				Invariant:   3,
				PostingID:   txn.ID,
				Description: fmt.Sprintf("unknown category %q", txn.Category),
			})
		}
		if !txn.Bank.Valid() {
			errs = append(errs, ValidationError{
				Invariant:   3,
				PostingID:   txn.ID,
				Description: fmt.Sprintf("unknown bank %q", txn.Bank),
			})
		}
		if !txn.Type.Valid() {
			errs = append(errs, ValidationError{
				Invariant:   3,
				PostingID:   txn.ID,
				Description: fmt.Sprintf("unknown type %q", txn.Type),
			})
		}
		if !txn.PaymentMethod.Valid() {
			errs = append(errs, ValidationError{
				Invariant:   3,
				PostingID:   txn.ID,
				Description: fmt.Sprintf("unknown payment method %q", txn.PaymentMethod),
			})
		}

		// Invariant 4: Income is always a direct debit.
		if txn.Type == model.TypeIncome && txn.PaymentMethod != model.MethodDebit {
			errs = append(errs, ValidationError{
				Invariant:   4,
				PostingID:   txn.ID,
				Description: "income posting must use debit",
			})
		}

		// Invariant 5: Date within month.
		if txn.Date.Year() != year || int(txn.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant:   5,
				PostingID:   txn.ID,
				Description: fmt.Sprintf("date %s not in %04d-%02d", txn.Date.Format("2006-01-02"), year, month),
			})
		}
	}

	// Invariant 6: Unique sequential IDs, contiguous 1..N.
	seqSeen := make(map[int]bool)
	for _, txn := range txns {
		_, _, seq, err := id.Parse(txn.ID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   6,
				PostingID:   txn.ID,
				Description: fmt.Sprintf("invalid posting ID: %v", err),
			})
			continue
		}
		if seqSeen[seq] {
			errs = append(errs, ValidationError{
				Invariant:   6,
				PostingID:   txn.ID,
				Description: fmt.Sprintf("duplicate sequence %d", seq),
			})
		}
		seqSeen[seq] = true
	}
	for i := 1; i <= len(seqSeen); i++ {
		if !seqSeen[i] {
			errs = append(errs, ValidationError{
				Invariant:   6,
				PostingID:   fmt.Sprintf("seq %d", i),
				Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seqSeen)),
			})
		}
	}

	return errs
}
