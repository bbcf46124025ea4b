// Package leaderboard commits finished runs and ranks them.
//
// Records are (name, score) pairs with no identity beyond the pair. The
// canonical persisted form is one "<name>: <score>" line per record.
package leaderboard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Separator splits a ledger line into name and score.
const Separator = ": "

var (
	// ErrInvalidName is returned for names that cannot round-trip through a ledger line.
	ErrInvalidName = errors.New("leaderboard: invalid name")
	// ErrNoStore is returned when committing without a backing store.
	ErrNoStore = errors.New("leaderboard: no store configured")
)

// Record is a single leaderboard entry.
type Record struct {
	Name  string
	Score int
}

// ValidateName checks that name is non-empty and contains neither the
// separator nor a line break.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case strings.Contains(name, Separator):
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, Separator)
	case strings.ContainsAny(name, "\r\n"):
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidName, name)
	}
	return nil
}

// FormatLine renders r as a ledger line including the trailing newline.
func FormatLine(r Record) string {
	return r.Name + Separator + strconv.Itoa(r.Score) + "\n"
}

// ParseLine parses one ledger line. Lines that do not split into exactly
// a name and a base-10 integer are rejected.
func ParseLine(line string) (Record, bool) {
	parts := strings.Split(strings.TrimSpace(line), Separator)
	if len(parts) != 2 {
		return Record{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Record{}, false
	}
	return Record{Name: parts[0], Score: score}, true
}

// ParseLedger reads every well-formed record from r in order, skipping
// malformed lines of any length. On a read error the records parsed so
// far are returned with it.
func ParseLedger(r io.Reader) ([]Record, error) {
	var records []Record
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if rec, ok := ParseLine(line); ok {
				records = append(records, rec)
			}
		}
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("leaderboard: read ledger: %w", err)
		}
	}
}
