package commands

import (
	"fmt"

	"github.com/finchat-dev/finchat/internal/gitops"
)

// commitSnapshot records the current state of the data directory. A clean
// tree is not an error.
func commitSnapshot(ws *workspace, message string) error {
	author := gitops.Author{
		Name:  ws.cfg.Git.AuthorName,
		Email: ws.cfg.Git.AuthorEmail,
	}

	if err := gitops.EnsureRepo(ws.dir); err != nil {
		return fmt.Errorf("preparing git repo: %w", err)
	}

	hash, err := gitops.Snapshot(ws.dir, message, author)
	if err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	if hash != "" {
		ws.logger.Debug("snapshot committed", "hash", hash)
	}
	return nil
}
