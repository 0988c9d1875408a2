package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finchat-dev/finchat/internal/chat"
)

func newChatCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			assistant := chat.New(ws.parser, ws.ledger, ws.dir, ws.logger)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Olá, %s! Me conte seus gastos ou pergunte seu saldo. (\"sair\" encerra)\n\n", ws.cfg.Profile.Name)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "> ")
				if !scanner.Scan() {
					break
				}
				text := strings.TrimSpace(scanner.Text())
				if text == "" {
					continue
				}
				if text == "sair" || text == "exit" {
					break
				}

				reply, err := assistant.Reply(text)
				if err != nil {
					ws.logger.Error("failed to process message", "err", err)
					continue
				}
				fmt.Fprintf(out, "\n%s\n\n", reply)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			return ws.snapshot("chat: session")
		},
	}
}
