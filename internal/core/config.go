package core

// RuntimeConfig contains configuration passed to the game at initialization.
// ScreenW/ScreenH describe the host surface (terminal cells or window pixels);
// the game itself always simulates on its configured playfield.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width
	ScreenH  int   // Host surface height
	TickRate int   // Simulation ticks per second (default 33)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 33,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int    // Current score
	Stage int    // Current stage, 0-indexed
	Mode  string // Current screen mode name
	Quit  bool   // Whether a quit was requested
}

// NoticeKind classifies something noteworthy that happened during a tick.
type NoticeKind int

const (
	NoticeModeChanged NoticeKind = iota
	NoticeStageCleared
	NoticeVictory
	NoticeRecordCommitted
	NoticeCommitFailed
)

// String returns a human-readable name for the notice kind.
func (k NoticeKind) String() string {
	switch k {
	case NoticeModeChanged:
		return "mode changed"
	case NoticeStageCleared:
		return "stage cleared"
	case NoticeVictory:
		return "victory"
	case NoticeRecordCommitted:
		return "record committed"
	case NoticeCommitFailed:
		return "commit failed"
	default:
		return "unknown"
	}
}

// Notice reports an event to the platform, which decides whether to log it.
type Notice struct {
	Kind   NoticeKind
	Detail string
	Err    error
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any notices raised during the tick.
type StepResult struct {
	State   GameState
	Notices []Notice
}
