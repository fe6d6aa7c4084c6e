//go:build !windows

package pilotcli

import "net"

// dial connects to the backend bridge over the unix socket, falling
// back to the loopback TCP listener when the socket is unavailable.
func dial() (net.Conn, error) {
	if forceTCP() {
		debugLog("forcing TCP connection to %s", tcpAddress())
		return dialFunc("tcp", tcpAddress())
	}
	conn, err := dialFunc("unix", socketPath())
	if err == nil {
		return conn, nil
	}
	debugLog("unix socket dial failed (%v), trying TCP %s", err, tcpAddress())
	return dialFunc("tcp", tcpAddress())
}

func dialURI(d *DaemonURI) (net.Conn, error) {
	switch d.Scheme {
	case SchemeUnix:
		return dialFunc("unix", d.Address)
	case SchemeTCP:
		return dialFunc("tcp", d.Address)
	default:
		return nil, ErrUnsupportedScheme
	}
}
