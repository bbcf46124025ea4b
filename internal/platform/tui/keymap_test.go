package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dragon-math/internal/core"
)

func TestMapKeyToFrame(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.InputEvent
		quit     bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.InputEvent{core.Key(core.InputEnter)}, false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []core.InputEvent{core.Key(core.InputBackspace)}, false},
		{"tab mutes", tea.KeyMsg{Type: tea.KeyTab}, []core.InputEvent{core.Key(core.InputToggleMute)}, false},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, []core.InputEvent{core.Key(core.InputQuit)}, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.InputEvent{core.Key(core.InputQuit)}, true},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}, []core.InputEvent{core.Char('7')}, false},
		{"minus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}}, []core.InputEvent{core.Char('-')}, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.InputEvent{core.Char(' ')}, false},
		{"q is a letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, []core.InputEvent{core.Char('q')}, false},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ann"), Paste: true},
			[]core.InputEvent{core.Char('A'), core.Char('n'), core.Char('n')}, false},
		{"alt combo ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, nil, false},
		{"arrow ignored", tea.KeyMsg{Type: tea.KeyUp}, nil, false},
	}

	keys := DefaultKeyMap()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			quit := keys.MapKeyToFrame(tt.msg, &frame)

			if quit != tt.quit {
				t.Errorf("MapKeyToFrame() quit = %v, expected %v", quit, tt.quit)
			}
			if len(tt.expected) == 0 {
				if len(frame.Events) != 0 {
					t.Errorf("frame = %v, expected no events", frame.Events)
				}
				return
			}
			if !reflect.DeepEqual(frame.Events, tt.expected) {
				t.Errorf("frame = %v, expected %v", frame.Events, tt.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
