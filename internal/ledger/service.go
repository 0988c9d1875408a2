// Package ledger is the recording sink behind the chat parser: it fans an
// installment or recurring plan out into monthly postings and persists them
// as per-month CSV files under the data directory.
package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/id"
	"github.com/finchat-dev/finchat/internal/model"
)

// Service provides business logic for ledger postings.
type Service struct {
	dataDir string
}

// NewService creates a ledger Service rooted at dataDir.
func NewService(dataDir string) *Service {
	return &Service{dataDir: dataDir}
}

// RecordParams is the sink contract: one parsed utterance, possibly fanning
// out into several postings. RepeatMonths is the number of postings to
// create; IsInstallment false means the plan is an open-ended recurrence
// (already capped by the parser).
type RecordParams struct {
	Description   string
	Amount        decimal.Decimal
	Type          model.TxType
	Category      model.Category
	Bank          model.Bank
	PaymentMethod model.PaymentMethod
	Date          time.Time
	RepeatMonths  int
	IsInstallment bool
}

// Record creates the postings for one utterance: one per occurrence, a month
// apart starting at params.Date, linked by a shared reference. Amounts are
// rounded to cents on write. Returns the created postings.
func (s *Service) Record(params RecordParams) ([]model.Transaction, error) {
	n := params.RepeatMonths
	if n < 1 {
		n = 1
	}

	amount := params.Amount.Round(2)
	ref := uuid.NewString()
	recurring := !params.IsInstallment && n > 1

	var created []model.Transaction
	for i := 0; i < n; i++ {
		desc := params.Description
		if n > 1 && !recurring {
			desc = fmt.Sprintf("%s (%d/%d)", desc, i+1, n)
		}

		txn := model.Transaction{
			Date:          addMonths(params.Date, i),
			Description:   desc,
			Amount:        amount,
			Type:          params.Type,
			Category:      params.Category,
			Bank:          params.Bank,
			PaymentMethod: params.PaymentMethod,
			Reference:     ref,
			Recurring:     recurring,
		}

		recorded, err := s.append(txn)
		if err != nil {
			return created, fmt.Errorf("posting %d/%d: %w", i+1, n, err)
		}
		created = append(created, recorded)
	}
	return created, nil
}

// append assigns the next sequential ID in the posting's month, validates the
// month as a whole and appends the row to its transactions.csv.
func (s *Service) append(txn model.Transaction) (model.Transaction, error) {
	year := txn.Date.Year()
	month := int(txn.Date.Month())

	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return model.Transaction{}, err
	}

	txn.ID = id.Format(year, month, nextSeq(existing))

	all := append(existing, txn)
	if verrs := ValidateTransactions(all, year, month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return model.Transaction{}, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return model.Transaction{}, fmt.Errorf("creating ledger dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return model.Transaction{}, fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, []model.Transaction{txn}); err != nil {
		return model.Transaction{}, fmt.Errorf("appending posting: %w", err)
	}
	return txn, nil
}

// ReadMonth reads all postings for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.Transaction, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return txns, nil
}

// ReadAll reads every posting under the data directory.
func (s *Service) ReadAll() ([]model.Transaction, error) {
	var txns []model.Transaction
	err := filepath.WalkDir(s.dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || d.Name() != "transactions.csv" {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		monthTxns, err := ReadTransactions(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		txns = append(txns, monthTxns...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}

// addMonths steps t forward by n calendar months, clamping the day to the
// target month's last day so a plan anchored on the 31st lands every month
// instead of normalizing into the next one.
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func nextSeq(txns []model.Transaction) int {
	maxSeq := 0
	for _, txn := range txns {
		_, _, seq, err := id.Parse(txn.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "transactions.csv")
}
