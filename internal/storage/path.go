// Package storage provides leaderboard persistence: a flat text ledger
// and a SQLite table. Both implement leaderboard.Store.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExpandPath expands a leading ~ to the home directory.
func ExpandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// prepare expands path and creates its parent directories.
func prepare(path string) (string, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
