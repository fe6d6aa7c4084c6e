package gateway

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/lockpilot/lockpilot/pkg/logger"
	"github.com/lockpilot/lockpilot/pkg/pilotlib"
)

func withFakeKeyring(t *testing.T, store map[string]string, setErr error) {
	t.Helper()
	origGet, origSet := keyringGet, keyringSet
	keyringGet = func(service, user string) (string, error) {
		if v, ok := store[service+"/"+user]; ok {
			return v, nil
		}
		return "", keyring.ErrNotFound
	}
	keyringSet = func(service, user, password string) error {
		if setErr != nil {
			return setErr
		}
		store[service+"/"+user] = password
		return nil
	}
	t.Cleanup(func() {
		keyringGet, keyringSet = origGet, origSet
	})
}

func TestEnsureTokenMintsAndStoresInKeyring(t *testing.T) {
	t.Setenv(pilotlib.ConfigDirEnv, t.TempDir())
	store := map[string]string{}
	withFakeKeyring(t, store, nil)

	tok, err := EnsureToken(logger.NewNopLogger())
	if err != nil {
		t.Fatalf("EnsureToken: %v", err)
	}
	if len(tok) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(tok))
	}
	if store[keyringService+"/"+keyringAccount] != tok {
		t.Error("token not stored in keyring")
	}

	again, err := EnsureToken(logger.NewNopLogger())
	if err != nil {
		t.Fatalf("EnsureToken second call: %v", err)
	}
	if again != tok {
		t.Errorf("token changed across calls: %q != %q", again, tok)
	}
}

func TestEnsureTokenFileFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(pilotlib.ConfigDirEnv, dir)
	withFakeKeyring(t, map[string]string{}, errors.New("no keyring daemon"))

	ml := logger.NewMockLogger()
	tok, err := EnsureToken(ml)
	if err != nil {
		t.Fatalf("EnsureToken: %v", err)
	}

	path := filepath.Join(dir, tokenFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("token file: %v", err)
	}
	if string(b) != tok {
		t.Errorf("file token %q != returned %q", b, tok)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("token file mode = %o, want 0600", perm)
	}
	if len(ml.WarningCalls) == 0 {
		t.Error("expected a warning about the keyring fallback")
	}

	again, err := EnsureToken(logger.NewNopLogger())
	if err != nil {
		t.Fatalf("EnsureToken reread: %v", err)
	}
	if again != tok {
		t.Errorf("fallback token not reused: %q != %q", again, tok)
	}
}
