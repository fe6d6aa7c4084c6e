package pilotlib

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestPrefs(t *testing.T) *Prefs {
	t.Helper()
	p, err := OpenPrefs(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("OpenPrefs: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestPrefsDefaults(t *testing.T) {
	p := openTestPrefs(t)
	if got, err := p.Get(PrefUpdateChannel); err != nil || got != "main" {
		t.Fatalf("Get(update_channel) = %q, %v; want main", got, err)
	}
	if got, err := p.Get(PrefTimeFormat); err != nil || got != "24h" {
		t.Fatalf("Get(time_format) = %q, %v; want 24h", got, err)
	}
}

func TestPrefsSetGet(t *testing.T) {
	p := openTestPrefs(t)
	if err := p.Set(PrefUpdateChannel, "dev"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, err := p.Get(PrefUpdateChannel); err != nil || got != "dev" {
		t.Fatalf("Get after Set = %q, %v", got, err)
	}
	// Overwrite goes through the upsert path.
	if err := p.Set(PrefUpdateChannel, "main"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if got, _ := p.Get(PrefUpdateChannel); got != "main" {
		t.Fatalf("Get after overwrite = %q", got)
	}
}

func TestPrefsRejectsUnknownKey(t *testing.T) {
	p := openTestPrefs(t)
	if _, err := p.Get("theme"); !errors.Is(err, ErrUnknownPref) {
		t.Fatalf("Get unknown key: err = %v", err)
	}
	if err := p.Set("theme", "dark"); !errors.Is(err, ErrUnknownPref) {
		t.Fatalf("Set unknown key: err = %v", err)
	}
}

func TestPrefsRejectsInvalidValue(t *testing.T) {
	p := openTestPrefs(t)
	if err := p.Set(PrefUpdateChannel, "nightly"); err == nil {
		t.Fatalf("Set accepted an invalid channel")
	}
	if err := p.Set(PrefTimeFormat, "25h"); err == nil {
		t.Fatalf("Set accepted an invalid time format")
	}
}

func TestPrefsPersistAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	p, err := OpenPrefs(path)
	if err != nil {
		t.Fatalf("OpenPrefs: %v", err)
	}
	if err := p.Set(PrefTimeFormat, "12h"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	p2, err := OpenPrefs(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer p2.Close()
	if got, err := p2.Get(PrefTimeFormat); err != nil || got != "12h" {
		t.Fatalf("Get after reopen = %q, %v", got, err)
	}
}
