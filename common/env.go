// Package common provides the shared wire vocabulary for the LockPilot
// bridge: method names, payload types, and the request validation rules
// every frontend applies before issuing a remote call.
package common

// Environment variable names for transport configuration.
const (
	// SocketPathEnv overrides the default bridge socket path.
	SocketPathEnv = "LOCKPILOT_SOCKET_PATH"

	// TCPPortEnv overrides the default TCP fallback port.
	TCPPortEnv = "LOCKPILOT_TCP_PORT"

	// ForceTCPEnv forces TCP connections when set to "1".
	ForceTCPEnv = "LOCKPILOT_FORCE_TCP"

	// DebugEnv enables debug logging when set to "1".
	DebugEnv = "LOCKPILOT_DEBUG"
)
