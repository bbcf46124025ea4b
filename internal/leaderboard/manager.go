package leaderboard

import "sort"

// Store persists records. Implementations must return records from
// ReadAll in the order they were appended.
type Store interface {
	Append(name string, score int) error
	ReadAll() ([]Record, error)
}

// Ranking is a ranked view of the leaderboard.
// NoScores is set when nothing could be shown; Err carries the read
// failure, if any, for logging.
type Ranking struct {
	Entries  []Record
	NoScores bool
	Err      error
}

// Manager validates commits and computes rankings over a Store.
type Manager struct {
	store Store
}

// NewManager creates a manager backed by store. A nil store is allowed;
// commits then fail with ErrNoStore and rankings are empty.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Commit validates name and appends one record.
func (m *Manager) Commit(name string, score int) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if m == nil || m.store == nil {
		return ErrNoStore
	}
	return m.store.Append(name, score)
}

// Top returns the n best records. Records read before a failure are
// still ranked; with none, the Ranking has NoScores set. Err carries
// the failure either way.
func (m *Manager) Top(n int) Ranking {
	if m == nil || m.store == nil {
		return Ranking{NoScores: true, Err: ErrNoStore}
	}
	records, err := m.store.ReadAll()
	top := Rank(records, n)
	return Ranking{Entries: top, NoScores: len(top) == 0, Err: err}
}

// Rank sorts a copy of records by score descending and returns the first
// n. Ties keep their input order. n <= 0 returns every record.
func Rank(records []Record, n int) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
