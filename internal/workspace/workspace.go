package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// BaseDirName is the per-user workspace directory under $HOME.
const BaseDirName = ".wordfreq"

// EnsureDefault creates the default workspace under the user's home
// directory and returns its path.
func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout at base: a data directory for
// user-supplied language tables, with the config file and history
// database living at the base itself.
func EnsureAt(base string) (string, error) {
	if err := os.MkdirAll(DataDir(base), 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", DataDir(base), err)
	}
	return base, nil
}

// DataDir is where <lang>.tsv frequency tables live.
func DataDir(base string) string {
	return filepath.Join(base, "data")
}

// ConfigPath is the workspace config file location.
func ConfigPath(base string) string {
	return filepath.Join(base, "config.yaml")
}

// HistoryPath is the analysis history database location.
func HistoryPath(base string) string {
	return filepath.Join(base, "history.db")
}
