//go:build !windows

package pilotcli

import (
	"os"
	"path/filepath"

	"github.com/lockpilot/lockpilot/common"
)

func socketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "lockpilot.sock")
}
