package pilotcli

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Scheme identifies the transport named by a bridge URI.
type Scheme string

const (
	SchemeUnix Scheme = "unix"
	SchemeTCP  Scheme = "tcp"
	SchemePipe Scheme = "pipe"
)

var (
	ErrEmptyURI          = errors.New("empty bridge uri")
	ErrUnsupportedScheme = errors.New("unsupported bridge uri scheme")
	ErrEmptyAddress      = errors.New("bridge uri has no address")
)

// DaemonURI is a parsed bridge address of the form scheme://address.
type DaemonURI struct {
	Scheme  Scheme
	Address string
}

// ParseDaemonURI parses scheme://address into a DaemonURI. unix:// is
// rejected on Windows and pipe:// everywhere else.
func ParseDaemonURI(uri string) (*DaemonURI, error) {
	if uri == "" {
		return nil, ErrEmptyURI
	}
	scheme, addr, found := strings.Cut(uri, "://")
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, uri)
	}
	if addr == "" {
		return nil, ErrEmptyAddress
	}
	s := Scheme(scheme)
	switch s {
	case SchemeUnix:
		if runtime.GOOS == "windows" {
			return nil, fmt.Errorf("%w: unix sockets are not available on windows", ErrUnsupportedScheme)
		}
	case SchemePipe:
		if runtime.GOOS != "windows" {
			return nil, fmt.Errorf("%w: named pipes are only available on windows", ErrUnsupportedScheme)
		}
	case SchemeTCP:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}
	return &DaemonURI{Scheme: s, Address: addr}, nil
}
