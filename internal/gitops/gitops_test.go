package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestEnsureRepoAndSnapshot(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	assert.False(t, IsRepo(dir))
	require.NoError(t, EnsureRepo(dir))
	assert.True(t, IsRepo(dir))

	// EnsureRepo is idempotent.
	require.NoError(t, EnsureRepo(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte("id\n"), 0o644))

	author := Author{Name: "FinChat", Email: "bot@finchat.dev"}
	hash, err := Snapshot(dir, "record posting", author)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Nothing changed: no commit, no error.
	hash, err = Snapshot(dir, "noop", author)
	require.NoError(t, err)
	assert.Empty(t, hash)
}
