package keybackend

import (
	"fmt"
	"os"
	"strings"
)

// LoadTokenFromFile reads a token from a file such as a mounted secret.
// A single trailing line ending is removed; everything else is kept as is.
func LoadTokenFromFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is from trusted config file
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := string(data)
	if t, ok := strings.CutSuffix(token, "\n"); ok {
		token = strings.TrimSuffix(t, "\r")
	}

	if token == "" {
		return "", fmt.Errorf("read token file %s: %w", path, ErrEmptyToken)
	}

	return token, nil
}
