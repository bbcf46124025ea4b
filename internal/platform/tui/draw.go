package tui

import (
	"unicode/utf8"

	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/platform/scene"
)

// viewport maps the pixel playfield onto a grid of terminal cells.
// A cell stands for the playfield point at its center, so a cell is
// painted for a shape exactly when a click on it lands inside the shape.
type viewport struct {
	cols, rows int // cell grid
	w, h       int // playfield pixels
}

func newViewport(cols, rows, w, h int) viewport {
	return viewport{cols: max(cols, 1), rows: max(rows, 1), w: max(w, 1), h: max(h, 1)}
}

// cellOf returns the cell containing a playfield point.
func (v viewport) cellOf(px, py int) (int, int) {
	return px * v.cols / v.w, py * v.rows / v.h
}

// pointOf returns the playfield point at the center of a cell.
func (v viewport) pointOf(cx, cy int) (int, int) {
	return (2*cx + 1) * v.w / (2 * v.cols), (2*cy + 1) * v.h / (2 * v.rows)
}

// cellBox returns the block of cells whose centers lie inside r.
// ok is false when r is too small to cover any cell center.
func (v viewport) cellBox(r core.Rect) (box core.Rect, ok bool) {
	x0, y0 := v.cellOf(r.X, r.Y)
	x1, y1 := v.cellOf(r.Right(), r.Bottom())
	minX, minY, maxX, maxY := -1, -1, -2, -2
	for cx := x0 - 1; cx <= x1+1; cx++ {
		if px, _ := v.pointOf(cx, 0); px >= r.X && px < r.Right() {
			if minX < 0 {
				minX = cx
			}
			maxX = cx
		}
	}
	for cy := y0 - 1; cy <= y1+1; cy++ {
		if _, py := v.pointOf(0, cy); py >= r.Y && py < r.Bottom() {
			if minY < 0 {
				minY = cy
			}
			maxY = cy
		}
	}
	if maxX < minX || maxY < minY {
		cx, cy := v.cellOf(r.Center())
		return core.NewRect(cx, cy, 1, 1), false
	}
	return core.NewRect(minX, minY, maxX-minX+1, maxY-minY+1), true
}

var (
	dragonRunes    = []rune{'▓', '▒', '▓', '░'}
	explosionRunes = []rune{'#', '*', '+', ':', '.'}
	knightRunes    = []rune{'█', '▓', '█', '▒'}
	stageGround    = []rune{'"', '.', '^'}
	stageColors    = []core.Color{core.ColorGreen, core.ColorYellow, core.ColorGray}
)

var roleColors = map[scene.Role]core.Color{
	scene.RoleTitle: core.ColorBrightYellow,
	scene.RoleBody:  core.ColorWhite,
	scene.RoleHUD:   core.ColorBrightGreen,
	scene.RoleError: core.ColorBrightRed,
}

// paint draws a scene onto the screen through the viewport.
func paint(s *core.Screen, v viewport, sc scene.Scene) {
	s.Clear()
	paintBackdrop(s, v, sc)

	if k := sc.Knight; k != nil {
		box, _ := v.cellBox(core.NewRect(k.X, k.Y, k.Size, k.Size))
		s.DrawRect(box, knightRunes[k.Frame%len(knightRunes)], core.ColorCyan)
		kx, ky := box.Center()
		s.SetCell(kx, ky, 'K', core.ColorBrightYellow)
	}

	for _, d := range sc.Dragons {
		box, _ := v.cellBox(d.Rect)
		switch {
		case d.Exploding:
			s.DrawRect(box, explosionRunes[d.Frame%len(explosionRunes)], core.ColorOrange)
		case d.Selected:
			s.DrawRect(box, dragonRunes[d.Frame%len(dragonRunes)], core.ColorBrightYellow)
		default:
			s.DrawRect(box, dragonRunes[d.Frame%len(dragonRunes)], core.ColorRed)
		}
	}

	for _, b := range sc.Buttons {
		box, _ := v.cellBox(b.Rect)
		s.DrawRect(box, ' ', core.ColorDefault)
		s.DrawBox(box, core.ColorWhite)
		label := []rune(b.Label)
		_, ly := box.Center()
		s.DrawText(box.X+(box.W-len(label))/2, ly, b.Label, core.ColorBrightYellow)
	}

	for _, t := range sc.Texts {
		cx, cy := v.cellOf(t.X, t.Y)
		if t.Centered {
			cx -= utf8.RuneCountInString(t.S) / 2
		}
		s.DrawText(cx, cy, t.S, roleColors[t.Role])
	}
}

func paintBackdrop(s *core.Screen, v viewport, sc scene.Scene) {
	switch sc.Backdrop {
	case scene.BackdropStart:
		for y := range s.Height() {
			for x := range s.Width() {
				if (x*7+y*13)%23 == 0 {
					s.SetCell(x, y, '·', core.ColorDarkGray)
				}
			}
		}
	case scene.BackdropStage:
		i := sc.Stage % len(stageGround)
		_, top := v.cellOf(0, sc.Height*3/4)
		s.DrawRect(core.NewRect(0, top, s.Width(), s.Height()-top), stageGround[i], stageColors[i])
	case scene.BackdropVictory:
		for y := range s.Height() {
			for x := range s.Width() {
				if (x+y)%11 == 0 {
					s.SetCell(x, y, '+', core.ColorYellow)
				}
			}
		}
	}
}
