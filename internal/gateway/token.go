package gateway

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/lockpilot/lockpilot/pkg/logger"
	"github.com/lockpilot/lockpilot/pkg/pilotlib"
)

const (
	keyringService = "lockpilot"
	keyringAccount = "gateway-token"
	tokenFileName  = "gateway.token"
)

// test seams
var (
	keyringGet = keyring.Get
	keyringSet = keyring.Set
)

// EnsureToken returns the gateway auth token, minting and persisting
// one on first run. The OS keyring is preferred; when it is unavailable
// the token lives in a 0600 file in the config dir.
func EnsureToken(l logger.Logger) (string, error) {
	if l == nil {
		l = logger.NewNopLogger()
	}
	tok, err := keyringGet(keyringService, keyringAccount)
	if err == nil && tok != "" {
		return tok, nil
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		l.Warning("keyring unavailable: %v", err)
	}

	dir, err := pilotlib.ConfigDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, tokenFileName)
	if b, err := os.ReadFile(path); err == nil {
		if tok := strings.TrimSpace(string(b)); tok != "" {
			return tok, nil
		}
	}

	tok, err = mintToken()
	if err != nil {
		return "", err
	}
	if err := keyringSet(keyringService, keyringAccount, tok); err != nil {
		l.Warning("keyring store failed, using file fallback: %v", err)
		if err := os.WriteFile(path, []byte(tok), 0600); err != nil {
			return "", err
		}
	}
	return tok, nil
}

func mintToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
