// Package commands wires the CLI surface: init, add, chat, balance, import
// and serve.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/finchat-dev/finchat/internal/buildinfo"
	"github.com/finchat-dev/finchat/internal/config"
	"github.com/finchat-dev/finchat/internal/ledger"
	"github.com/finchat-dev/finchat/internal/parser"
)

const configFile = "finchat.yaml"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "finchat",
		Short:   "Chat-driven personal finance ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "data directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand(&dir))
	rootCmd.AddCommand(newChatCommand(&dir))
	rootCmd.AddCommand(newBalanceCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))
	rootCmd.AddCommand(newServeCommand(&dir))

	return rootCmd
}

// workspace bundles the services every data-directory command needs.
type workspace struct {
	dir    string
	cfg    *config.Config
	parser *parser.Parser
	ledger *ledger.Service
	logger *log.Logger
}

// openWorkspace resolves the data directory and loads its configuration.
func openWorkspace(dir string, logOutput io.Writer) (*workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, configFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no %s in %s (run finchat init first)", configFile, absDir)
		}
		return nil, err
	}

	if logOutput == nil {
		logOutput = os.Stderr
	}
	logger := log.New(logOutput)

	p := parser.New(parser.Options{
		DefaultBank:    cfg.DefaultBank(),
		StrictKeywords: cfg.Parser.StrictKeywords,
	})

	return &workspace{
		dir:    absDir,
		cfg:    cfg,
		parser: p,
		ledger: ledger.NewService(absDir),
		logger: logger,
	}, nil
}

// snapshot commits the data directory when auto_commit is on.
func (ws *workspace) snapshot(message string) error {
	if !ws.cfg.Git.AutoCommit {
		return nil
	}
	return commitSnapshot(ws, message)
}

// months for CLI output, 1-indexed.
var monthNames = [13]string{"",
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s de %d", monthNames[t.Month()], t.Year())
}
