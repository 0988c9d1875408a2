package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finchat-dev/finchat/internal/budgets"
	"github.com/finchat-dev/finchat/internal/ledger"
	"github.com/finchat-dev/finchat/internal/model"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "finchat-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "finchat")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/finchat")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runFinchat(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func initDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runFinchat(t, "init", dir, "--name", "Ana")
	require.NoError(t, err)
	return dir
}

func TestInit_CreatesStructure(t *testing.T) {
	dir := initDir(t)

	expectedDirs := []string{
		"budgets",
		"logs",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range expectedDirs {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
}

func TestInit_Config(t *testing.T) {
	dir := initDir(t)

	data, err := os.ReadFile(filepath.Join(dir, "finchat.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Ana")
	assert.Contains(t, contents, "default_bank: itau")
}

func TestInit_DefaultBudgets(t *testing.T) {
	dir := initDir(t)

	svc, err := budgets.Load(dir)
	require.NoError(t, err)
	assert.Len(t, svc.All(), len(budgets.DefaultBudgets()))
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runFinchat(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}

func TestInit_WithGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	_, err := runFinchat(t, "init", dir, "--name", "Ana", "--git")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init: Ana")
}

func TestAdd_RecordsTransaction(t *testing.T) {
	dir := initDir(t)

	out, err := runFinchat(t, "add", "gastei", "50", "no", "mercado", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "R$ 50,00")

	txns, err := ledger.NewService(dir).ReadAll()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, model.CategoryFood, txns[0].Category)
	assert.Equal(t, model.BankItau, txns[0].Bank, "configured default bank applies")
}

func TestAdd_WithoutInit(t *testing.T) {
	dir := t.TempDir()
	out, err := runFinchat(t, "add", "gastei 50", "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, out, "finchat init")
}

func TestBalance(t *testing.T) {
	dir := initDir(t)

	_, err := runFinchat(t, "add", "recebi 3000 de salario", "--dir", dir)
	require.NoError(t, err)
	_, err = runFinchat(t, "add", "gastei 500 no mercado", "--dir", dir)
	require.NoError(t, err)

	out, err := runFinchat(t, "balance", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Saldo consolidado: R$ 2.500,00")
	assert.Contains(t, out, "itau")
	assert.Contains(t, out, "Alimentação")
}

func TestImport_Nubank(t *testing.T) {
	dir := initDir(t)

	statement := "Data,Valor,Identificador,Descrição\n" +
		"05/01/2025,-150.00,abc-123,Compra no supermercado\n" +
		"07/01/2025,3000.00,def-456,Transferência recebida\n"
	path := filepath.Join(dir, "import", "nubank-jan.csv")
	require.NoError(t, os.WriteFile(path, []byte(statement), 0o644))

	out, err := runFinchat(t, "import", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Imported 2 transactions")

	txns, err := ledger.NewService(dir).ReadAll()
	require.NoError(t, err)
	require.Len(t, txns, 2)

	// Moved out of the import queue.
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "nubank-jan.csv"))
	assert.NoError(t, err)
}

func TestImport_Empty(t *testing.T) {
	dir := initDir(t)

	out, err := runFinchat(t, "import", "--dir", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Nothing to import")
}
