// Package window runs dragon math in a desktop window on Ebitengine.
// The window shows the playfield at its native pixel size.
package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/games/dragonmath"
	"github.com/vovakirdan/dragon-math/internal/locale"
	"github.com/vovakirdan/dragon-math/internal/platform/scene"
)

// Window implements ebiten.Game for one dragon math game.
type Window struct {
	game   *dragonmath.Game
	text   locale.Table
	logger *log.Logger
	frame  core.InputFrame
	chars  []rune
}

var _ ebiten.Game = (*Window)(nil)

// New creates a window for the game. A nil logger discards notices.
func New(game *dragonmath.Game, text locale.Table, logger *log.Logger) *Window {
	return &Window{
		game:   game,
		text:   text,
		logger: logger,
		frame:  core.NewInputFrame(),
		chars:  make([]rune, 0, 8),
	}
}

// Update advances the game by one tick. Ebitengine calls it at the game's
// tick rate.
func (w *Window) Update() error {
	in := poll(w.chars)
	w.chars = in.Chars
	return w.step(in)
}

func (w *Window) step(in rawInput) error {
	w.frame.Clear()
	translate(in, &w.frame)

	result := w.game.Step(w.frame)
	scene.LogNotices(w.logger, result.Notices)

	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	paint(screen, scene.Build(w.game.Frame(), w.text))
}

// Layout fixes the logical screen to the playfield size; Ebitengine scales
// it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	pf := w.game.Config().Playfield
	return pf.Width, pf.Height
}

// Run opens the window and blocks until the player quits or closes it.
func Run(game *dragonmath.Game, text locale.Table, logger *log.Logger, rt core.RuntimeConfig) error {
	if rt.TickRate <= 0 {
		rt.TickRate = game.Config().Timing.TickRate
	}
	game.Reset(rt)

	pf := game.Config().Playfield
	ebiten.SetWindowSize(pf.Width, pf.Height)
	ebiten.SetWindowTitle(text.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(rt.TickRate)

	return ebiten.RunGame(New(game, text, logger))
}
