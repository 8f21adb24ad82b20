package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
	"github.com/sunnytraders/inventory_pro_app/internal/platform/catalog"
)

func TestValidateKnownTriple(t *testing.T) {
	cat := catalog.Default()

	assert.NoError(t, cat.Validate("Cement", "UltraTech", "bag"))
	assert.NoError(t, cat.Validate("Stone/Crusher", "Khadi", "brass"))
}

func TestValidateRejectsUnknownParts(t *testing.T) {
	cat := catalog.Default()

	assert.ErrorIs(t, cat.Validate("Timber", "Teak", "cft"), apperrors.ErrValidation)
	assert.ErrorIs(t, cat.Validate("Cement", "No Such Brand", "bag"), apperrors.ErrValidation)
	assert.ErrorIs(t, cat.Validate("Cement", "UltraTech", "brass"), apperrors.ErrValidation)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cat, err := catalog.Load("")
	require.NoError(t, err)
	assert.NoError(t, cat.Validate("Cement", "UltraTech", "bag"))
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cat, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cat.CategoryNames())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `
categories:
  Steel:
    TMT 8mm: [kg, tonne]
expenseTypes: [Transport]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cat, err := catalog.Load(path)
	require.NoError(t, err)

	assert.NoError(t, cat.Validate("Steel", "TMT 8mm", "tonne"))
	assert.ErrorIs(t, cat.Validate("Cement", "UltraTech", "bag"), apperrors.ErrValidation)
	assert.Equal(t, []string{"Transport"}, cat.ExpenseTypes)
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: {}\n"), 0o600))

	_, err := catalog.Load(path)
	assert.Error(t, err)
}

func TestCategoryNamesSorted(t *testing.T) {
	names := catalog.Default().CategoryNames()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
}
