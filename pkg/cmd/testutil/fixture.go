package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlasm/pkg/consts"
	"github.com/stretchr/testify/require"
)

// RecipeDir creates a temp directory holding the given files, keyed by their
// slash-separated path relative to the directory.
func RecipeDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create directory for: %s", name)
		require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile), "Failed to write file: %s", name)
	}

	return dir
}

// RequireFileContent asserts that a file exists and holds exactly the expected text
func RequireFileContent(t *testing.T, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.Equal(t, expected, string(content))
}
