package dragonmath

import "github.com/vovakirdan/dragon-math/internal/leaderboard"

// Mode is the screen the game is on.
type Mode int

const (
	ModeStart Mode = iota
	ModePlaying
	ModeNameEntry
	ModeScoreDisplay
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeNameEntry:
		return "name-entry"
	case ModeScoreDisplay:
		return "score-display"
	default:
		return "unknown"
	}
}

// Session holds all state of one playthrough. It is rebuilt on reset.
type Session struct {
	Mode      Mode
	Tick      uint64
	Score     int
	Stage     int
	Answer    []rune
	Name      []rune
	Challenge Challenge
	Knight    Knight
	Dragons   *Arena

	ErrorTicks    int  // remaining ticks of the "select a dragon" message
	VictoryPlayed bool // victory sound requested this playthrough
	Committed     bool // record written to the leaderboard
	DisplayTicks  int  // remaining ticks on the score screen
	Ranking       leaderboard.Ranking
}
