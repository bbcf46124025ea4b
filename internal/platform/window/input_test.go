package window

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
	"github.com/vovakirdan/dragon-math/internal/games/dragonmath"
	"github.com/vovakirdan/dragon-math/internal/locale"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		in       rawInput
		expected []core.InputEvent
	}{
		{"nothing", rawInput{}, nil},
		{"close wins", rawInput{Closing: true, Enter: true, Chars: []rune("1")}, []core.InputEvent{core.Key(core.InputQuit)}},
		{"escape", rawInput{Escape: true}, []core.InputEvent{core.Key(core.InputQuit)}},
		{"typed then enter", rawInput{Chars: []rune("42"), Enter: true},
			[]core.InputEvent{core.Char('4'), core.Char('2'), core.Key(core.InputEnter)}},
		{"click first", rawInput{Click: true, X: 120, Y: 340, Chars: []rune("7")},
			[]core.InputEvent{core.Click(120, 340), core.Char('7')}},
		{"backspace", rawInput{Backspace: true}, []core.InputEvent{core.Key(core.InputBackspace)}},
		{"tab", rawInput{Tab: true}, []core.InputEvent{core.Key(core.InputToggleMute)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			translate(tt.in, &frame)

			if len(tt.expected) == 0 {
				if len(frame.Events) != 0 {
					t.Errorf("translate() = %v, expected no events", frame.Events)
				}
				return
			}
			if !reflect.DeepEqual(frame.Events, tt.expected) {
				t.Errorf("translate() = %v, expected %v", frame.Events, tt.expected)
			}
		})
	}
}

func TestStepStartsAndQuits(t *testing.T) {
	game := dragonmath.New(config.DefaultConfig(), nil, nil)
	w := New(game, locale.MustGet("en"), nil)

	if err := w.step(rawInput{Enter: true}); err != nil {
		t.Fatalf("step(enter) = %v, expected nil", err)
	}
	if game.Mode() != dragonmath.ModePlaying {
		t.Errorf("Mode() = %v, expected playing", game.Mode())
	}

	err := w.step(rawInput{Closing: true})
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("step(close) = %v, expected ebiten.Termination", err)
	}
}

func TestLayoutIsPlayfield(t *testing.T) {
	game := dragonmath.New(config.DefaultConfig(), nil, nil)
	w := New(game, locale.MustGet("en"), nil)

	gw, gh := w.Layout(1920, 1080)
	if gw != 800 || gh != 600 {
		t.Errorf("Layout() = %dx%d, expected 800x600", gw, gh)
	}
}
