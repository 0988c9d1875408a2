package commands

import (
	"github.com/spf13/cobra"

	"github.com/finchat-dev/finchat/internal/chat"
	"github.com/finchat-dev/finchat/internal/server"
)

func newServeCommand(dir *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chat assistant over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			assistant := chat.New(ws.parser, ws.ledger, ws.dir, ws.logger)
			srv := server.New(assistant, ws.ledger, ws.logger)
			return srv.Start(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
