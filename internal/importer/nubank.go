package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finchat-dev/finchat/internal/model"
)

// NubankParser parses Nubank account statement CSV exports
// (header: Data,Valor,Identificador,Descrição).
type NubankParser struct{}

const (
	nubankDateFormat = "02/01/2006"
	nubankNumFields  = 4
	nubankColDate    = 0
	nubankColAmount  = 1
	nubankColRef     = 2
	nubankColDesc    = 3
)

// Format returns the parser name.
func (p *NubankParser) Format() string { return "nubank" }

// Parse reads a Nubank CSV and returns StatementTransactions.
func (p *NubankParser) Parse(r io.Reader) ([]model.StatementTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = nubankNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading nubank CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.StatementTransaction
	for i, rec := range records[1:] {
		txn, err := parseNubankRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseNubankRow(rec []string) (model.StatementTransaction, error) {
	date, err := time.Parse(nubankDateFormat, rec[nubankColDate])
	if err != nil {
		return model.StatementTransaction{}, fmt.Errorf("parsing date %q: %w", rec[nubankColDate], err)
	}

	amount, err := parseNubankAmount(rec[nubankColAmount])
	if err != nil {
		return model.StatementTransaction{}, fmt.Errorf("parsing amount %q: %w", rec[nubankColAmount], err)
	}

	return model.StatementTransaction{
		Date:        date,
		Description: strings.TrimSpace(rec[nubankColDesc]),
		Amount:      amount,
		Reference:   strings.TrimSpace(rec[nubankColRef]),
	}, nil
}

// parseNubankAmount accepts both the plain export form ("-2327.00") and the
// pt-BR form with comma decimals ("-2.327,00").
func parseNubankAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "R$", ""))
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}
