package tokenx

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const secretBytes = 32

// LoadOrGenerateSecret reads the signing secret from file, generating
// and persisting a fresh one when the file does not exist. The secret is
// stored base64-encoded so it survives editors and env tooling.
func LoadOrGenerateSecret(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		secret, decErr := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
		if decErr != nil {
			return nil, fmt.Errorf("tokenx: secret file %s is not valid base64: %w", path, decErr)
		}
		if len(secret) < secretBytes {
			return nil, fmt.Errorf("tokenx: secret file %s holds fewer than %d bytes", path, secretBytes)
		}
		return secret, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	secret := make([]byte, secretBytes)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("tokenx: failed to generate secret: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	encoded := base64.StdEncoding.EncodeToString(secret)
	if err := os.WriteFile(path, []byte(encoded+"\n"), 0o600); err != nil {
		return nil, err
	}
	return secret, nil
}
