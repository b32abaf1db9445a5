package paths

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the user's config directory for toggle.
//
// If the home directory cannot be determined, it falls back to a directory
// under the system temporary directory.
func GetConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(filepath.Join(os.TempDir(), ".toggle-config"))
	}
	return filepath.Clean(filepath.Join(homeDir, ".config", "toggle"))
}

// GetDataDir returns the user's data directory for toggle (logs).
func GetDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Clean(filepath.Join(os.TempDir(), ".toggle"))
	}
	return filepath.Clean(filepath.Join(homeDir, ".toggle"))
}
