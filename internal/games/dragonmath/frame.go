package dragonmath

import (
	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/leaderboard"
)

// KnightSprite is the knight as drawn this tick.
type KnightSprite struct {
	X, Y  int
	Size  int
	Frame int
}

// DragonSprite is one dragon as drawn this tick. Frame is the steady
// sprite frame, or the explosion frame when Exploding is set.
type DragonSprite struct {
	Handle    Handle
	Rect      core.Rect
	Frame     int
	Exploding bool
	Selected  bool
}

// Frame is a read-only draw list describing one rendered tick. Renderers
// choose the backdrop from Mode and Stage and format text themselves.
type Frame struct {
	Mode          Mode
	Width, Height int
	Stage, Stages int

	Knight  KnightSprite
	Dragons []DragonSprite

	Question  string
	Answer    string
	Score     int
	ShowError bool

	Name    string
	Ranking leaderboard.Ranking

	Muted       bool
	MuteButton  core.Rect
	StartButton core.Rect
}

// Frame builds the draw list for the current state. It never mutates the
// game.
func (g *Game) Frame() Frame {
	f := Frame{
		Mode:        g.s.Mode,
		Width:       g.cfg.Playfield.Width,
		Height:      g.cfg.Playfield.Height,
		Stage:       g.s.Stage,
		Stages:      g.cfg.Progression.Stages,
		Question:    g.s.Challenge.String(),
		Answer:      string(g.s.Answer),
		Score:       g.s.Score,
		ShowError:   g.s.ErrorTicks > 0,
		Name:        string(g.s.Name),
		Ranking:     g.s.Ranking,
		Muted:       g.muted,
		MuteButton:  g.MuteButton(),
		StartButton: g.StartButton(),
		Knight: KnightSprite{
			X:     int(g.s.Knight.X),
			Y:     g.s.Knight.Y,
			Size:  g.cfg.Playfield.KnightSize,
			Frame: g.s.Knight.Frame,
		},
	}

	if g.s.Mode == ModePlaying {
		dragons := g.s.Dragons.All()
		f.Dragons = make([]DragonSprite, 0, len(dragons))
		for _, d := range dragons {
			sprite := DragonSprite{
				Handle:    d.Handle,
				Rect:      d.Rect,
				Frame:     g.s.Dragons.SpriteFrame(d),
				Exploding: d.Exploding(),
				Selected:  d.Selected(),
			}
			if sprite.Exploding {
				sprite.Frame = min(d.Explosion, g.cfg.Animation.ExplosionFrames-1)
			}
			f.Dragons = append(f.Dragons, sprite)
		}
	}

	return f
}
