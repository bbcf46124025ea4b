package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dragon-math/internal/core"
)

// KeyMap defines the game's control keys. Every other printable key is
// passed to the game as a character.
type KeyMap struct {
	Submit     key.Binding
	Delete     key.Binding
	Mute       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Delete, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Delete},
		{k.Mute, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "delete"),
		),
		Mute: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mute"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// MapKeyToFrame appends the events for a key message to the frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Push(core.Key(core.InputQuit))
		return true
	case key.Matches(msg, k.Submit):
		frame.Push(core.Key(core.InputEnter))
	case key.Matches(msg, k.Delete):
		frame.Push(core.Key(core.InputBackspace))
	case key.Matches(msg, k.Mute):
		frame.Push(core.Key(core.InputToggleMute))
	case msg.Type == tea.KeySpace:
		frame.Push(core.Char(' '))
	case msg.Type == tea.KeyRunes && !msg.Alt:
		// Pasted text arrives as one message with several runes.
		for _, r := range msg.Runes {
			frame.Push(core.Char(r))
		}
	}
	return false
}
