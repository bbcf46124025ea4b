package core

// InputKind classifies a discrete input event.
type InputKind int

const (
	InputNone       InputKind = iota
	InputQuit                 // Ctrl+C, Esc, window close - exit from any mode
	InputRune                 // A printable character (digits, '-', name letters)
	InputEnter                // Enter - submit answer, start game, commit name
	InputBackspace            // Backspace - delete last character
	InputClick                // Pointer click at playfield coordinates
	InputToggleMute           // Platform mute key
)

// String returns a human-readable name for the input kind.
func (k InputKind) String() string {
	switch k {
	case InputNone:
		return "None"
	case InputQuit:
		return "Quit"
	case InputRune:
		return "Rune"
	case InputEnter:
		return "Enter"
	case InputBackspace:
		return "Backspace"
	case InputClick:
		return "Click"
	case InputToggleMute:
		return "ToggleMute"
	default:
		return "Unknown"
	}
}

// InputEvent is one input event delivered to the game.
// Rune is set for InputRune; X and Y are playfield coordinates for InputClick.
type InputEvent struct {
	Kind InputKind
	Rune rune
	X, Y int
}

// Key builds a control key event.
func Key(kind InputKind) InputEvent {
	return InputEvent{Kind: kind}
}

// Char builds a printable character event.
func Char(r rune) InputEvent {
	return InputEvent{Kind: InputRune, Rune: r}
}

// Click builds a pointer click event at playfield coordinates.
func Click(x, y int) InputEvent {
	return InputEvent{Kind: InputClick, X: x, Y: y}
}

// InputFrame collects the input events received during one simulation tick.
// Events keep their arrival order because typed characters are order-sensitive.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Events: make([]InputEvent, 0, 8),
	}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(ev InputEvent) {
	f.Events = append(f.Events, ev)
}

// Has returns true if an event of the given kind was received this frame.
func (f InputFrame) Has(kind InputKind) bool {
	for _, ev := range f.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
