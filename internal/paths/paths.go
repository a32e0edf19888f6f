package paths

import (
	"os"
	"path/filepath"
)

// AppDataDir returns the directory holding an application's config, log and
// history files. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
//
// The directory is created with owner-only permissions.
func AppDataDir(app string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, app)
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path of the TOML config file.
func ConfigFilePath(app string) string {
	return filepath.Join(AppDataDir(app), "config.toml")
}

// LogFilePath returns the path to the application log file.
func LogFilePath(app string) string {
	return filepath.Join(AppDataDir(app), app+".log")
}

// HistoryDBPath returns the path of the transcript history database.
func HistoryDBPath(app string) string {
	return filepath.Join(AppDataDir(app), "history.db")
}
