package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a temporary directory holding combos.yaml with content.
// It returns the absolute path to the config file.
// It fails the test immediately on error.
func SetupTestConfig(t *testing.T, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	path := filepath.Join(absPath, "combos.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write combo config")
	return path
}
