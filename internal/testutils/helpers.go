package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteMenu writes content to name inside a fresh temporary directory and returns the
// absolute path. The extension of name selects the menu format.
// It fails the test immediately on error.
func WriteMenu(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	absPath, err := filepath.Abs(filepath.Join(dir, name))
	require.NoError(t, err, "Failed to get absolute path for menu file")

	require.NoError(t, os.WriteFile(absPath, []byte(content), 0o644), "Failed to write menu file")
	return absPath
}
