package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/finchat-dev/finchat/internal/chat"
)

func newAddCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Record a transaction from a natural-language phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			assistant := chat.New(ws.parser, ws.ledger, ws.dir, ws.logger)
			reply, err := assistant.Reply(text)
			if err != nil {
				return err
			}
			cmd.Println(reply)

			return ws.snapshot("add: " + text)
		},
	}
}
