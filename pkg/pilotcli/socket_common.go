package pilotcli

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"

	"github.com/lockpilot/lockpilot/common"
)

// dialFunc points at net.Dial so tests can intercept dialing.
var dialFunc = net.Dial

// tcpPort returns the TCP fallback port from the environment, or the
// default when unset or out of range.
func tcpPort() int {
	if port := os.Getenv(common.TCPPortEnv); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			if p >= 1 && p <= 65535 {
				return p
			}
			debugLog("invalid TCP port %d, using default %d", p, common.DefaultTCPPort)
		}
	}
	return common.DefaultTCPPort
}

// forceTCP reports whether LOCKPILOT_FORCE_TCP=1.
func forceTCP() bool {
	return os.Getenv(common.ForceTCPEnv) == "1"
}

// debugMode reports whether LOCKPILOT_DEBUG=1.
func debugMode() bool {
	return os.Getenv(common.DebugEnv) == "1"
}

func tcpAddress() string {
	return fmt.Sprintf("%s:%d", common.TCPHost, tcpPort())
}

func debugLog(format string, args ...any) {
	if debugMode() {
		log.Printf(format, args...)
	}
}
