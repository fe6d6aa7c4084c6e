package pilotlib

import (
	"errors"
	"os"
	"path/filepath"
)

// ConfigDirEnv overrides the default configuration directory.
const ConfigDirEnv = "LOCKPILOT_CONFIG_DIR"

// ConfigDir resolves the LockPilot configuration directory, creating it
// if needed. The environment override wins; otherwise the per-user
// config dir is used.
func ConfigDir() (string, error) {
	dir := os.Getenv(ConfigDirEnv)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "lockpilot")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if abs == "" {
		return "", errors.New("config dir is empty")
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", err
	}
	return abs, nil
}
