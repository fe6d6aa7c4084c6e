package pilotlib

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Preference keys. These are the only flags the frontend persists; the
// backend owns everything else.
const (
	// PrefUpdateChannel selects which release track the update panel
	// checks and installs from.
	PrefUpdateChannel = "update_channel"

	// PrefTimeFormat selects the clock style used when rendering timer
	// target times.
	PrefTimeFormat = "time_format"
)

// Allowed time_format values.
const (
	TimeFormat24h = "24h"
	TimeFormat12h = "12h"
)

// ErrUnknownPref is returned for keys outside the known flag set.
var ErrUnknownPref = errors.New("unknown preference key")

// prefDefaults holds the value returned for a flag that was never set,
// and doubles as the allowed-value table for Set.
var prefDefaults = map[string]struct {
	def     string
	allowed []string
}{
	PrefUpdateChannel: {def: "main", allowed: []string{"main", "dev"}},
	PrefTimeFormat:    {def: TimeFormat24h, allowed: []string{TimeFormat24h, TimeFormat12h}},
}

// Prefs is the local preference store, a single-table key-value sqlite
// database in the config directory.
type Prefs struct {
	db *sql.DB
}

// OpenPrefs opens (creating if needed) the preference database at path.
func OpenPrefs(path string) (*Prefs, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening preference store: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing preference store: %w", err)
	}
	return &Prefs{db: db}, nil
}

// Get returns the stored value for key, or its default when unset.
func (p *Prefs) Get(key string) (string, error) {
	spec, ok := prefDefaults[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPref, key)
	}
	var value string
	err := p.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return spec.def, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value for key, rejecting unknown keys and values outside
// the key's allowed set.
func (p *Prefs) Set(key, value string) error {
	spec, ok := prefDefaults[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPref, key)
	}
	valid := false
	for _, a := range spec.allowed {
		if value == a {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid value %q for %s (allowed: %v)", value, key, spec.allowed)
	}
	_, err := p.db.Exec(
		`INSERT INTO prefs (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// Keys returns the known preference keys in a stable order.
func (p *Prefs) Keys() []string {
	return []string{PrefUpdateChannel, PrefTimeFormat}
}

// Close releases the underlying database handle.
func (p *Prefs) Close() error {
	return p.db.Close()
}
