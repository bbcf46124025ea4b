// Package locale provides a registry of static UI string tables.
// Tables register themselves in init() functions, allowing the platform
// to list and select languages without hardcoded dependencies.
package locale

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// DefaultCode is the table used when no language is requested.
const DefaultCode = "en"

// ErrUnknown is returned by Get for an unregistered language code.
var ErrUnknown = errors.New("locale: unknown language")

// Table holds every user-visible string. Fields ending in "Fmt" are
// fmt format strings; the helper methods below apply them.
type Table struct {
	Code string
	Name string

	Title        string
	Tagline      string
	Instructions []string
	Start        string

	QuestionFmt string // question text
	AnswerFmt   string // answer buffer
	ScoreFmt    string // score
	StageFmt    string // stage, total
	SelectFirst string

	NamePrompt  string
	VictoryFmt  string // score
	PlaceFmt    string // rank, name, score
	NoScores    string
	Mute        string
	Unmute      string
	HelpPlaying string
}

// Question formats the active challenge line.
func (t Table) Question(expr string) string { return fmt.Sprintf(t.QuestionFmt, expr) }

// Answer formats the answer buffer line.
func (t Table) Answer(buf string) string { return fmt.Sprintf(t.AnswerFmt, buf) }

// Score formats the score line.
func (t Table) Score(score int) string { return fmt.Sprintf(t.ScoreFmt, score) }

// Stage formats the stage indicator with a 1-based stage number.
func (t Table) Stage(stage, total int) string { return fmt.Sprintf(t.StageFmt, stage+1, total) }

// Victory formats the score screen headline.
func (t Table) Victory(score int) string { return fmt.Sprintf(t.VictoryFmt, score) }

// Place formats one leaderboard row with a 1-based rank.
func (t Table) Place(rank int, name string, score int) string {
	return fmt.Sprintf(t.PlaceFmt, rank, name, score)
}

// Info contains metadata about a registered table.
type Info struct {
	Code string
	Name string
}

var (
	tables = make(map[string]Table)
	mu     sync.RWMutex
)

// Register adds a string table to the registry.
// Panics if a table with the same code is already registered.
func Register(t Table) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := tables[t.Code]; exists {
		panic(fmt.Sprintf("locale: table %q already registered", t.Code))
	}
	tables[t.Code] = t
}

// List returns all registered tables, sorted by code.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(tables))
	for code, t := range tables {
		result = append(result, Info{Code: code, Name: t.Name})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Code < result[j].Code
	})

	return result
}

// Get returns the table for code. An empty code selects DefaultCode.
func Get(code string) (Table, error) {
	if code == "" {
		code = DefaultCode
	}

	mu.RLock()
	defer mu.RUnlock()

	t, ok := tables[code]
	if !ok {
		return Table{}, fmt.Errorf("%w %q", ErrUnknown, code)
	}
	return t, nil
}

// MustGet is Get for built-in codes; it panics on an unknown code.
func MustGet(code string) Table {
	t, err := Get(code)
	if err != nil {
		panic(err)
	}
	return t
}
