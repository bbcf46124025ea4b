// Package scene turns a game frame into positioned text, buttons and
// sprites in playfield coordinates. The terminal and window front ends
// paint the same scene at different resolutions.
package scene

import (
	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/games/dragonmath"
	"github.com/vovakirdan/dragon-math/internal/locale"
)

// Backdrop selects the background picture.
type Backdrop int

const (
	BackdropStart Backdrop = iota
	BackdropStage
	BackdropVictory
)

// Role selects how a text line is styled.
type Role int

const (
	RoleTitle Role = iota
	RoleBody
	RoleHUD
	RoleError
)

// Text is one line of text. When Centered is set, X is the horizontal
// center of the line instead of its left edge.
type Text struct {
	X, Y     int
	Centered bool
	S        string
	Role     Role
}

// Button is a clickable labelled rectangle.
type Button struct {
	Rect  core.Rect
	Label string
}

// Scene is everything a front end needs to draw one tick.
type Scene struct {
	Width, Height int
	Backdrop      Backdrop
	Stage         int

	Texts   []Text
	Buttons []Button

	Knight  *dragonmath.KnightSprite
	Dragons []dragonmath.DragonSprite
}

// Build lays out a frame with the given string table.
func Build(f dragonmath.Frame, t locale.Table) Scene {
	sc := Scene{
		Width:  f.Width,
		Height: f.Height,
		Stage:  f.Stage,
	}
	w, h := f.Width, f.Height

	switch f.Mode {
	case dragonmath.ModeStart:
		sc.Backdrop = BackdropStart
		sc.center(w/2, h/2-200, t.Title, RoleTitle)
		sc.center(w/2, h/2-150, t.Tagline, RoleBody)
		for i, line := range t.Instructions {
			sc.center(w/2, h/2-80+30*i, line, RoleBody)
		}
		sc.Buttons = append(sc.Buttons, Button{Rect: f.StartButton, Label: t.Start})
		sc.addMute(f, t)

	case dragonmath.ModePlaying:
		sc.Backdrop = BackdropStage
		knight := f.Knight
		sc.Knight = &knight
		sc.Dragons = f.Dragons
		sc.left(20, 20, t.Question(f.Question), RoleHUD)
		sc.left(20, 60, t.Answer(f.Answer), RoleHUD)
		sc.left(w-250, 20, t.Score(f.Score), RoleHUD)
		sc.left(w-250, 60, t.Stage(f.Stage, f.Stages), RoleHUD)
		if f.ShowError {
			sc.center(w/2, h-50, t.SelectFirst, RoleError)
		}
		sc.addMute(f, t)

	case dragonmath.ModeNameEntry:
		sc.Backdrop = BackdropStage
		sc.center(w/2, h/2, t.NamePrompt+f.Name, RoleHUD)
		sc.addMute(f, t)

	case dragonmath.ModeScoreDisplay:
		sc.Backdrop = BackdropVictory
		sc.center(w/2, h/2-150, t.Victory(f.Score), RoleTitle)
		if f.Ranking.NoScores {
			sc.center(w/2, h/2+100, t.NoScores, RoleBody)
			break
		}
		for i, rec := range f.Ranking.Entries {
			sc.left(w/2-200, h/2-50+40*i, t.Place(i+1, rec.Name, rec.Score), RoleBody)
		}
	}

	return sc
}

func (sc *Scene) addMute(f dragonmath.Frame, t locale.Table) {
	label := t.Mute
	if f.Muted {
		label = t.Unmute
	}
	sc.Buttons = append(sc.Buttons, Button{Rect: f.MuteButton, Label: label})
}

func (sc *Scene) center(x, y int, s string, role Role) {
	sc.Texts = append(sc.Texts, Text{X: x, Y: y, Centered: true, S: s, Role: role})
}

func (sc *Scene) left(x, y int, s string, role Role) {
	sc.Texts = append(sc.Texts, Text{X: x, Y: y, S: s, Role: role})
}
