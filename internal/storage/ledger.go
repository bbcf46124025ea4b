package storage

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/vovakirdan/dragon-math/internal/leaderboard"
)

// Ledger is an append-only text file of "<name>: <score>" lines.
// It is safe for concurrent use within one process.
type Ledger struct {
	mu   sync.Mutex
	path string
}

var _ leaderboard.Store = (*Ledger)(nil)

// OpenLedger prepares a ledger at path. The file itself is created on
// the first Append.
func OpenLedger(path string) (*Ledger, error) {
	if path == "" {
		return nil, errors.New("storage: empty ledger path")
	}
	path, err := prepare(path)
	if err != nil {
		return nil, err
	}
	return &Ledger{path: path}, nil
}

// Append writes one record line.
func (l *Ledger) Append(name string, score int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open ledger: %w", err)
	}
	line := leaderboard.FormatLine(leaderboard.Record{Name: name, Score: score})
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("storage: cannot append record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: cannot close ledger: %w", err)
	}
	return nil
}

// ReadAll returns every well-formed record in file order. A missing file
// yields an error wrapping os.ErrNotExist.
func (l *Ledger) ReadAll() ([]leaderboard.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open ledger: %w", err)
	}
	defer f.Close()

	return leaderboard.ParseLedger(f)
}

// Clear removes every record. A missing file is already clear.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.Truncate(l.path, 0); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot clear ledger: %w", err)
	}
	return nil
}
