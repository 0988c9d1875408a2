package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,date,description,amount,type,category,bank,payment_method,reference,recurring"

const (
	numFields    = 10
	dateFormat   = "2006-01-02"
	colID        = 0
	colDate      = 1
	colDesc      = 2
	colAmount    = 3
	colType      = 4
	colCategory  = 5
	colBank      = 6
	colMethod    = 7
	colReference = 8
	colRecurring = 9
)

// ReadTransactions reads all postings from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// AppendTransactions appends postings to an existing transactions.csv writer
// (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// WriteTransactions writes postings to a transactions.csv writer, header
// included.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = txn.ID
	row[colDate] = txn.Date.Format(dateFormat)
	row[colDesc] = txn.Description
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colType] = string(txn.Type)
	row[colCategory] = string(txn.Category)
	row[colBank] = string(txn.Bank)
	row[colMethod] = string(txn.PaymentMethod)
	row[colReference] = txn.Reference
	row[colRecurring] = strconv.FormatBool(txn.Recurring)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	recurring, err := strconv.ParseBool(record[colRecurring])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing recurring %q: %w", record[colRecurring], err)
	}

	return model.Transaction{
		ID:            record[colID],
		Date:          date,
		Description:   record[colDesc],
		Amount:        amount,
		Type:          model.TxType(record[colType]),
		Category:      model.Category(record[colCategory]),
		Bank:          model.Bank(record[colBank]),
		PaymentMethod: model.PaymentMethod(record[colMethod]),
		Reference:     record[colReference],
		Recurring:     recurring,
	}, nil
}
