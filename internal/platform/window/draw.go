package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/games/dragonmath"
	"github.com/vovakirdan/dragon-math/internal/platform/scene"
)

var face font.Face = basicfont.Face7x13

var (
	colorText     = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	colorOutline  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	colorTitle    = color.RGBA{0xFF, 0xD7, 0x00, 0xFF}
	colorError    = color.RGBA{0xFF, 0x40, 0x40, 0xFF}
	colorButton   = color.RGBA{0x2B, 0x6C, 0xB0, 0xFF}
	colorBorder   = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	colorKnight   = color.RGBA{0xC0, 0xC0, 0xD0, 0xFF}
	colorPlume    = color.RGBA{0xD9, 0x53, 0x4F, 0xFF}
	colorDragon   = color.RGBA{0x3C, 0x8D, 0x2F, 0xFF}
	colorWing     = color.RGBA{0x2A, 0x65, 0x21, 0xFF}
	colorSelected = color.RGBA{0xFF, 0xCC, 0x00, 0xFF}
	colorFire     = color.RGBA{0xFF, 0x8C, 0x00, 0xFF}
	colorSmoke    = color.RGBA{0x55, 0x55, 0x55, 0xC0}
)

// stageBackdrops holds sky and ground colors per stage.
var stageBackdrops = [][2]color.RGBA{
	{{0xA7, 0xD0, 0xFF, 0xFF}, {0x5C, 0xB8, 0x5C, 0xFF}},
	{{0xF5, 0xC2, 0x7A, 0xFF}, {0xB0, 0x8D, 0x57, 0xFF}},
	{{0x4A, 0x3B, 0x5C, 0xFF}, {0x6B, 0x6B, 0x6B, 0xFF}},
}

// paint draws a scene onto the window at playfield resolution.
func paint(screen *ebiten.Image, sc scene.Scene) {
	paintBackdrop(screen, sc)

	if k := sc.Knight; k != nil {
		paintKnight(screen, *k)
	}
	for _, d := range sc.Dragons {
		paintDragon(screen, d)
	}
	for _, b := range sc.Buttons {
		paintButton(screen, b)
	}
	for _, t := range sc.Texts {
		x := t.X
		if t.Centered {
			x -= text.BoundString(face, t.S).Dx() / 2
		}
		outlined(screen, t.S, x, t.Y+face.Metrics().Ascent.Ceil(), roleColor(t.Role))
	}
}

func roleColor(r scene.Role) color.Color {
	switch r {
	case scene.RoleTitle:
		return colorTitle
	case scene.RoleError:
		return colorError
	default:
		return colorText
	}
}

// outlined draws text with a one pixel dark outline. y is the baseline.
func outlined(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx != 0 || dy != 0 {
				text.Draw(screen, s, face, x+dx, y+dy, colorOutline)
			}
		}
	}
	text.Draw(screen, s, face, x, y, clr)
}

func paintBackdrop(screen *ebiten.Image, sc scene.Scene) {
	w, h := float32(sc.Width), float32(sc.Height)
	switch sc.Backdrop {
	case scene.BackdropStart:
		screen.Fill(color.RGBA{0x1B, 0x1F, 0x3B, 0xFF})
		for i := range 40 {
			x := float32((i * 197) % sc.Width)
			y := float32((i * 131) % sc.Height)
			vector.DrawFilledCircle(screen, x, y, 1.5, colorText, true)
		}
	case scene.BackdropStage:
		bd := stageBackdrops[sc.Stage%len(stageBackdrops)]
		screen.Fill(bd[0])
		vector.DrawFilledRect(screen, 0, h*3/4, w, h/4, bd[1], false)
	case scene.BackdropVictory:
		screen.Fill(color.RGBA{0x3B, 0x2A, 0x0A, 0xFF})
		for i := range 12 {
			x := w * float32(i) / 12
			vector.StrokeLine(screen, x, 0, w/2, h/2, 2, color.RGBA{0xFF, 0xD7, 0x00, 0x40}, true)
		}
	}
}

func paintKnight(screen *ebiten.Image, k dragonmath.KnightSprite) {
	x, y, s := float32(k.X), float32(k.Y), float32(k.Size)

	// Body and helmet.
	vector.DrawFilledRect(screen, x+s*0.25, y+s*0.3, s*0.5, s*0.45, colorKnight, false)
	vector.DrawFilledCircle(screen, x+s*0.5, y+s*0.2, s*0.18, colorKnight, true)
	vector.DrawFilledRect(screen, x+s*0.45, y, s*0.1, s*0.08, colorPlume, false)

	// Legs swing with the walk frame.
	swing := float32(k.Frame%2*2-1) * s * 0.08
	vector.StrokeLine(screen, x+s*0.4, y+s*0.75, x+s*0.4+swing, y+s, 3, colorKnight, true)
	vector.StrokeLine(screen, x+s*0.6, y+s*0.75, x+s*0.6-swing, y+s, 3, colorKnight, true)

	// Sword.
	vector.StrokeLine(screen, x+s*0.75, y+s*0.5, x+s*0.95, y+s*0.15, 2, colorBorder, true)
}

func paintDragon(screen *ebiten.Image, d dragonmath.DragonSprite) {
	x, y, w, h := playfieldRect(d.Rect)
	cx, cy := x+w/2, y+h/2

	if d.Exploding {
		grow := float32(d.Frame+1) / 5
		vector.DrawFilledCircle(screen, cx, cy, w*0.5*grow, colorSmoke, true)
		vector.DrawFilledCircle(screen, cx, cy, w*0.35*grow, colorFire, true)
		return
	}

	flap := float32(d.Frame%2) * h * 0.15
	if d.Selected {
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 3, colorSelected, false)
	}
	vector.DrawFilledRect(screen, x, y+h*0.2-flap, w*0.3, h*0.3, colorWing, false)
	vector.DrawFilledRect(screen, x+w*0.7, y+h*0.2-flap, w*0.3, h*0.3, colorWing, false)
	vector.DrawFilledCircle(screen, cx, cy+h*0.1, w*0.3, colorDragon, true)
	vector.DrawFilledCircle(screen, cx, y+h*0.2, w*0.15, colorDragon, true)
	vector.DrawFilledCircle(screen, cx-w*0.05, y+h*0.17, 2, colorFire, true)
}

func paintButton(screen *ebiten.Image, b scene.Button) {
	x, y, w, h := playfieldRect(b.Rect)
	vector.DrawFilledRect(screen, x, y, w, h, colorButton, false)
	vector.StrokeRect(screen, x, y, w, h, 2, colorBorder, false)

	bounds := text.BoundString(face, b.Label)
	cx, cy := b.Rect.Center()
	text.Draw(screen, b.Label, face, cx-bounds.Dx()/2, cy+face.Metrics().Ascent.Ceil()/2, colorText)
}

// playfieldRect converts a playfield rectangle to ebiten float coordinates.
func playfieldRect(r core.Rect) (x, y, w, h float32) {
	return float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
}
