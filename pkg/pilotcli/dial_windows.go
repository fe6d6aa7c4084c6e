//go:build windows

package pilotcli

import (
	"context"
	"net"
	"time"

	"github.com/Microsoft/go-winio"
)

// dialPipeFunc points at winio.DialPipeContext so tests can intercept
// pipe dialing.
var dialPipeFunc = winio.DialPipeContext

// dial connects to the backend bridge over the named pipe, falling
// back to the loopback TCP listener when the pipe is unavailable.
func dial() (net.Conn, error) {
	if forceTCP() {
		debugLog("forcing TCP connection to %s", tcpAddress())
		return dialFunc("tcp", tcpAddress())
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := dialPipeFunc(ctx, pipePath())
	if err == nil {
		return conn, nil
	}
	debugLog("named pipe dial failed (%v), trying TCP %s", err, tcpAddress())
	return dialFunc("tcp", tcpAddress())
}

func dialURI(d *DaemonURI) (net.Conn, error) {
	switch d.Scheme {
	case SchemePipe:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return dialPipeFunc(ctx, d.Address)
	case SchemeTCP:
		return dialFunc("tcp", d.Address)
	default:
		return nil, ErrUnsupportedScheme
	}
}
