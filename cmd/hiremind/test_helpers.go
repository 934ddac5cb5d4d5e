package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the hiremind binary for CLI tests.
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "hiremind")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/hiremind ./cmd/hiremind'", binaryPath)
	}

	return binaryPath
}
