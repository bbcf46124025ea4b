// Package dragonmath implements the knight-and-dragons arithmetic game.
// The knight advances across three stages by answering questions tied to
// selected dragons; wrong answers spawn more dragons and push the knight
// back. Finishing the last stage records the player on the leaderboard.
package dragonmath

import (
	"math/rand"

	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/leaderboard"
)

// Board is the leaderboard as seen by the game.
type Board interface {
	Commit(name string, score int) error
	Top(n int) leaderboard.Ranking
}

// Game implements the dragon math game logic.
type Game struct {
	cfg   config.Config
	audio core.Audio
	board Board

	rt     core.RuntimeConfig
	rng    *rand.Rand
	placer *Placer
	s      Session

	muted   bool
	quit    bool
	notices []core.Notice
}

// New creates a game. A nil audio plays nothing; a nil board keeps no
// scores.
func New(cfg config.Config, audio core.Audio, board Board) *Game {
	if audio == nil {
		audio = core.NopAudio{}
	}
	if board == nil {
		board = leaderboard.NewManager(nil)
	}
	g := &Game{
		cfg:   cfg,
		audio: audio,
		board: board,
		muted: cfg.Audio.Muted,
	}
	g.Reset(core.RuntimeConfig{TickRate: cfg.Timing.TickRate, Seed: 1})
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dragonmath"
}

// Reset reseeds the game and returns it to the start screen.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.placer = NewPlacer(g.rng, g.cfg)
	g.quit = false
	g.audio.SetMuted(g.muted)
	g.reset()
}

// reset rebuilds the session, keeping the RNG stream and mute state.
func (g *Game) reset() {
	g.audio.StopMusic()
	g.s = Session{
		Mode:      ModeStart,
		Challenge: g.newChallenge(),
		Knight:    NewKnight(g.cfg),
		Dragons:   NewArena(g.cfg),
	}
	g.populate()
}

// populate replaces the steady dragons with a fresh stage population.
// Each dragon is placed against the ones placed before it.
func (g *Game) populate() {
	g.s.Dragons.RemoveLive()
	placed := make([]core.Rect, 0, g.cfg.Placement.InitialDragons)
	for range g.cfg.Placement.InitialDragons {
		x, y, ok := g.placer.Place(placed)
		g.s.Dragons.Spawn(x, y, !ok)
		placed = append(placed, core.NewRect(x, y, g.cfg.Playfield.DragonSize, g.cfg.Playfield.DragonSize))
	}
}

func (g *Game) newChallenge() Challenge {
	return NewChallenge(g.rng, g.cfg.Progression.OperandMin, g.cfg.Progression.OperandMax)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.notices = nil

	if g.quit || in.Has(core.InputQuit) {
		g.quit = true
		return core.StepResult{State: g.State()}
	}

	g.s.Tick++

	switch g.s.Mode {
	case ModeStart:
		g.stepStart(in)
	case ModePlaying:
		g.stepPlaying(in)
	case ModeNameEntry:
		g.stepNameEntry(in)
	case ModeScoreDisplay:
		g.stepScoreDisplay()
	}

	return core.StepResult{State: g.State(), Notices: g.notices}
}

func (g *Game) stepStart(in core.InputFrame) {
	for _, ev := range in.Events {
		switch ev.Kind {
		case core.InputEnter:
			g.start()
			return
		case core.InputToggleMute:
			g.toggleMute()
		case core.InputClick:
			switch {
			case g.MuteButton().Contains(ev.X, ev.Y):
				g.toggleMute()
			case g.StartButton().Contains(ev.X, ev.Y):
				g.start()
				return
			}
		}
	}
}

func (g *Game) start() {
	g.setMode(ModePlaying)
	g.audio.Play(core.SoundMusic)
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if g.s.ErrorTicks > 0 {
		g.s.ErrorTicks--
	}

	for _, ev := range in.Events {
		if g.s.Mode != ModePlaying {
			break
		}
		switch ev.Kind {
		case core.InputToggleMute:
			g.toggleMute()
		case core.InputClick:
			if g.MuteButton().Contains(ev.X, ev.Y) {
				g.toggleMute()
			} else {
				g.s.Dragons.Click(ev.X, ev.Y)
			}
		case core.InputRune:
			if isAnswerRune(ev.Rune) && len(g.s.Answer) < g.cfg.Progression.MaxAnswerLen {
				g.s.Answer = append(g.s.Answer, ev.Rune)
			}
		case core.InputBackspace:
			g.s.Answer = trimLast(g.s.Answer)
		case core.InputEnter:
			g.submitAnswer()
		}
	}

	// Entities advance even on the tick that ends the run so the last
	// explosion still sounds.
	g.s.Knight.Update()
	g.s.Dragons.Update(func(Handle) {
		g.audio.Play(core.SoundExplosion)
	})
	g.s.Dragons.Sweep()
}

func (g *Game) stepNameEntry(in core.InputFrame) {
	for _, ev := range in.Events {
		if g.s.Mode != ModeNameEntry {
			return
		}
		switch ev.Kind {
		case core.InputToggleMute:
			g.toggleMute()
		case core.InputClick:
			if g.MuteButton().Contains(ev.X, ev.Y) {
				g.toggleMute()
			}
		case core.InputRune:
			g.typeName(ev.Rune)
		case core.InputBackspace:
			g.s.Name = trimLast(g.s.Name)
		case core.InputEnter:
			g.commitName()
		}
	}
}

func (g *Game) stepScoreDisplay() {
	g.s.DisplayTicks--
	if g.s.DisplayTicks <= 0 {
		g.reset()
		g.notify(core.NoticeModeChanged, ModeStart.String(), nil)
	}
}

func (g *Game) toggleMute() {
	g.muted = !g.muted
	g.audio.SetMuted(g.muted)
}

func (g *Game) setMode(m Mode) {
	if g.s.Mode == m {
		return
	}
	g.s.Mode = m
	g.notify(core.NoticeModeChanged, m.String(), nil)
}

func (g *Game) notify(kind core.NoticeKind, detail string, err error) {
	g.notices = append(g.notices, core.Notice{Kind: kind, Detail: detail, Err: err})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.s.Score,
		Stage: g.s.Stage,
		Mode:  g.s.Mode.String(),
		Quit:  g.quit,
	}
}

// Mode returns the current screen.
func (g *Game) Mode() Mode {
	return g.s.Mode
}

// Muted reports whether sound is muted.
func (g *Game) Muted() bool {
	return g.muted
}

// Config returns the game configuration.
func (g *Game) Config() config.Config {
	return g.cfg
}

// StartButton returns the start button in playfield coordinates.
func (g *Game) StartButton() core.Rect {
	w, h := g.cfg.Playfield.Width, g.cfg.Playfield.Height
	return core.NewRect(w/2-120, h/2+100, 200, 50)
}

// MuteButton returns the mute toggle in playfield coordinates.
func (g *Game) MuteButton() core.Rect {
	const size = 50
	return core.NewRect(g.cfg.Playfield.Width-size-20, 20, size, size)
}

func isAnswerRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '-'
}

func trimLast(rs []rune) []rune {
	if len(rs) == 0 {
		return rs
	}
	return rs[:len(rs)-1]
}
