package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finchat-dev/finchat/internal/budgets"
	"github.com/finchat-dev/finchat/internal/config"
	"github.com/finchat-dev/finchat/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name string
	var git bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new finchat data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, name, git)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&git, "git", false, "version the data directory with git")

	return cmd
}

func runInit(dir, name string, git bool) error {
	// Create directory structure.
	dirs := []string{
		"budgets",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write finchat.yaml.
	cfg := config.Default(name)
	cfg.Git.AutoCommit = git
	if err := config.Save(filepath.Join(dir, configFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write default budgets.
	svc := budgets.NewService(budgets.DefaultBudgets())
	if err := svc.Save(dir); err != nil {
		return fmt.Errorf("writing budgets: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if git {
		if err := gitops.EnsureRepo(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
		hash, err := gitops.Snapshot(dir, "init: "+name, author)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized finchat data directory at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized finchat data directory at %s\n", dir)
	return nil
}
