//go:build windows

package pilotcli

import (
	"os"

	"github.com/lockpilot/lockpilot/common"
)

func pipePath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return `\\.\pipe\lockpilot`
}
