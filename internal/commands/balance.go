package commands

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finchat-dev/finchat/internal/brl"
	"github.com/finchat-dev/finchat/internal/budgets"
	"github.com/finchat-dev/finchat/internal/model"
)

func newBalanceCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show consolidated balance, card bills and budget usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			sum, err := ws.ledger.Summary()
			if err != nil {
				return err
			}

			cmd.Printf("Saldo consolidado: %s\n", brl.Format(sum.Balance))
			cmd.Printf("  Entradas: %s\n", brl.Format(sum.TotalIncome))
			cmd.Printf("  Saídas:   %s\n", brl.Format(sum.TotalExpenses))

			if len(sum.BankBalances) > 0 {
				cmd.Println("\nSaldos por banco:")
				for _, bank := range model.Banks {
					if bal, ok := sum.BankBalances[bank]; ok {
						cmd.Printf("  %-8s %s\n", string(bank), brl.Format(bal))
					}
				}
			}

			if len(sum.CreditCardBills) > 0 {
				cmd.Println("\nFaturas abertas:")
				for _, bank := range model.Banks {
					if bill, ok := sum.CreditCardBills[bank]; ok {
						cmd.Printf("  %-8s %s\n", string(bank), brl.Format(bill))
					}
				}
			}

			return printBudgets(cmd, ws)
		},
	}
}

func printBudgets(cmd *cobra.Command, ws *workspace) error {
	svc, err := budgets.Load(ws.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	now := time.Now()
	spent, err := ws.ledger.CategoryTotals(now.Year(), int(now.Month()))
	if err != nil {
		return err
	}

	statuses := svc.Statuses(spent)
	if len(statuses) == 0 {
		return nil
	}

	cmd.Printf("\nOrçamentos de %s:\n", monthLabel(now))
	for _, st := range statuses {
		marker := " "
		if st.Exceeded() {
			marker = "!"
		}
		cmd.Printf("%s %-14s %s de %s\n", marker, model.CategoryLabels[st.Category], brl.Format(st.Spent), brl.Format(st.Limit))
	}
	return nil
}
