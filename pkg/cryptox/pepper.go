package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperPath string
)

// SetPepperPath points the package at the pepper file. When empty, no pepper
// is applied. Call once at startup before any hashing happens.
func SetPepperPath(path string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepperPath = path
	pepper = ""
}

// GetPepper returns the pepper, loading it from the configured file or
// generating and persisting a fresh one on first use.
func GetPepper() string {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" || pepperPath == "" {
		return pepper
	}

	loaded, err := loadOrGeneratePepper(pepperPath)
	if err != nil {
		slog.Error("failed to load or generate pepper", "err", err)
		os.Exit(1)
	}
	pepper = loaded
	return pepper
}

func loadOrGeneratePepper(path string) (string, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", err
	}

	raw := make([]byte, keyLength)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	generated := base64.RawURLEncoding.EncodeToString(raw)

	if err := os.WriteFile(path, []byte(generated), 0600); err != nil {
		return "", err
	}
	return generated, nil
}
