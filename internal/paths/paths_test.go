package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func withConfigHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

func TestAppDataDir_CreatesDirectory(t *testing.T) {
	withConfigHome(t)

	dir := AppDataDir("burger")
	require.Equal(t, "burger", filepath.Base(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestFilePaths(t *testing.T) {
	withConfigHome(t)

	dir := AppDataDir("burger")
	require.Equal(t, filepath.Join(dir, "config.toml"), ConfigFilePath("burger"))
	require.Equal(t, filepath.Join(dir, "burger.log"), LogFilePath("burger"))
	require.Equal(t, filepath.Join(dir, "history.db"), HistoryDBPath("burger"))
}
