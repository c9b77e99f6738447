package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile string
)

// SetPepperPath configures the file the pepper is read from. A missing file
// is created with a freshly generated pepper on first use.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepperFile = file
	pepper = ""
}

// SetPepper overrides the pepper directly, bypassing the file.
func SetPepper(value string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()
	pepper = value
}

// Pepper returns the process wide pepper, loading it on first call. Without a
// configured file an ephemeral pepper is generated, which invalidates every
// stored hash on restart.
func Pepper() (string, error) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper, nil
	}

	if pepperFile == "" {
		p, err := newPepper()
		if err != nil {
			return "", err
		}
		pepper = p
		return pepper, nil
	}

	p, err := loadOrCreatePepper(filepath.Clean(pepperFile))
	if err != nil {
		return "", fmt.Errorf("failed to load pepper: %w", err)
	}
	pepper = p
	return pepper, nil
}

func loadOrCreatePepper(file string) (string, error) {
	raw, err := os.ReadFile(file)
	switch {
	case err == nil:
		return strings.TrimSpace(string(raw)), nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return "", err
	}
	p, err := newPepper()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(file, []byte(p), 0o600); err != nil {
		return "", err
	}
	return p, nil
}

func newPepper() (string, error) {
	buf := make([]byte, keyLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
