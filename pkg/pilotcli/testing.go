package pilotcli

import "net"

// NewClientForTesting creates a Client over a custom connection.
// This allows tests to inject pipe connections without a bridge.
func NewClientForTesting(conn net.Conn) *Client {
	return newClient(conn)
}

// ReadForTesting exposes the framed read for testing purposes.
func ReadForTesting(conn net.Conn) ([]byte, error) {
	return read(conn)
}

// WriteForTesting exposes the framed write for testing purposes.
func WriteForTesting(conn net.Conn, data []byte) error {
	return write(conn, data)
}
