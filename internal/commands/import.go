package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finchat-dev/finchat/internal/importer"
	"github.com/finchat-dev/finchat/internal/ledger"
	"github.com/finchat-dev/finchat/internal/model"
	"github.com/finchat-dev/finchat/internal/parser"
)

func newImportCommand(dir *string) *cobra.Command {
	var format string
	var bank string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank statement CSVs from the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			stmtParser := importer.DefaultRegistry().Get(format)
			if stmtParser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}

			stmtBank := model.Bank(bank)
			if bank == "" {
				stmtBank = ws.cfg.DefaultBank()
			}
			if !stmtBank.Valid() {
				return fmt.Errorf("unknown bank %q", bank)
			}

			files, err := importer.Scan(ws.dir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				cmd.Println("Nothing to import.")
				return nil
			}

			total := 0
			for _, file := range files {
				n, err := importFile(ws, stmtParser, file, stmtBank)
				if err != nil {
					return fmt.Errorf("importing %s: %w", file.Name, err)
				}
				if err := importer.MarkProcessed(ws.dir, file.Name); err != nil {
					return err
				}
				ws.logger.Info("statement imported", "file", file.Name, "transactions", n)
				total += n
			}

			cmd.Printf("Imported %d transactions from %d files.\n", total, len(files))
			return ws.snapshot(fmt.Sprintf("import: %d statement files", len(files)))
		},
	}

	cmd.Flags().StringVar(&format, "format", "nubank", "statement format")
	cmd.Flags().StringVar(&bank, "bank", "", "bank the statement belongs to (defaults to the configured bank)")

	return cmd
}

func importFile(ws *workspace, stmtParser importer.Parser, file importer.FileInfo, bank model.Bank) (int, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return 0, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	stmts, err := stmtParser.Parse(f)
	if err != nil {
		return 0, fmt.Errorf("parsing statement: %w", err)
	}

	for _, stmt := range stmts {
		params := recordParams(ws, stmt, bank)
		if _, err := ws.ledger.Record(params); err != nil {
			return 0, fmt.Errorf("recording %q: %w", stmt.Description, err)
		}
	}
	return len(stmts), nil
}

// recordParams maps one statement line onto the ledger: the amount sign
// decides the direction, and the description is classified with the same
// keyword tables the chat uses.
func recordParams(ws *workspace, stmt model.StatementTransaction, bank model.Bank) ledger.RecordParams {
	txType := model.TypeExpense
	amount := stmt.Amount
	if amount.IsNegative() {
		amount = amount.Neg()
	} else {
		txType = model.TypeIncome
	}

	clean := parser.Normalize(stmt.Description)
	category, _ := parser.ClassifyCategory(clean, ws.cfg.Parser.StrictKeywords)
	if category == "" || category == model.CategoryOther {
		if txType == model.TypeIncome {
			category = model.CategorySalary
		} else {
			category = model.CategoryOther
		}
	}

	return ledger.RecordParams{
		Description:   stmt.Description,
		Amount:        amount,
		Type:          txType,
		Category:      category,
		Bank:          bank,
		PaymentMethod: model.MethodDebit,
		Date:          stmt.Date,
		RepeatMonths:  1,
		IsInstallment: true,
	}
}
