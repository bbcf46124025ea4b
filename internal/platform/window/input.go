package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dragon-math/internal/core"
)

// rawInput is what the window received during one tick, before it is
// turned into game events.
type rawInput struct {
	Closing   bool
	Escape    bool
	Enter     bool
	Backspace bool
	Tab       bool
	Chars     []rune
	Click     bool
	X, Y      int
}

// poll reads the input state from ebiten. chars is reused as the
// character buffer.
func poll(chars []rune) rawInput {
	in := rawInput{
		Closing:   ebiten.IsWindowBeingClosed(),
		Escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter),
		Backspace: repeating(ebiten.KeyBackspace),
		Tab:       inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Chars:     ebiten.AppendInputChars(chars[:0]),
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Click = true
		in.X, in.Y = ebiten.CursorPosition()
	}
	return in
}

// repeating reports a key press, repeating while the key is held.
func repeating(key ebiten.Key) bool {
	const (
		delay    = 20
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

// translate turns one tick of raw input into game events. Typed
// characters precede Enter so a fast "4 2 Enter" submits 42.
func translate(in rawInput, frame *core.InputFrame) {
	if in.Closing || in.Escape {
		frame.Push(core.Key(core.InputQuit))
		return
	}
	if in.Click {
		frame.Push(core.Click(in.X, in.Y))
	}
	for _, r := range in.Chars {
		frame.Push(core.Char(r))
	}
	if in.Backspace {
		frame.Push(core.Key(core.InputBackspace))
	}
	if in.Enter {
		frame.Push(core.Key(core.InputEnter))
	}
	if in.Tab {
		frame.Push(core.Key(core.InputToggleMute))
	}
}
