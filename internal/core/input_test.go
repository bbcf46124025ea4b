package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(Char('4'))
	f.Push(Char('2'))
	f.Push(Key(InputEnter))

	if len(f.Events) != 3 {
		t.Fatalf("len(Events) = %d, expected 3", len(f.Events))
	}
	if f.Events[0].Rune != '4' || f.Events[1].Rune != '2' {
		t.Errorf("events out of order: %+v", f.Events)
	}
	if !f.Has(InputEnter) {
		t.Error("Has(InputEnter) should be true")
	}
	if f.Has(InputQuit) {
		t.Error("Has(InputQuit) should be false")
	}
}

func TestInputFrameClearKeepsCapacity(t *testing.T) {
	f := NewInputFrame()
	f.Push(Click(120, 340))
	if ev := f.Events[0]; ev.Kind != InputClick || ev.X != 120 || ev.Y != 340 {
		t.Errorf("event = %+v, expected click at (120, 340)", ev)
	}

	capBefore := cap(f.Events)
	f.Clear()

	if len(f.Events) != 0 {
		t.Errorf("Clear() left %d events", len(f.Events))
	}
	if cap(f.Events) != capBefore {
		t.Errorf("cap after Clear() = %d, expected %d", cap(f.Events), capBefore)
	}
}

func TestInputKindString(t *testing.T) {
	tests := []struct {
		kind     InputKind
		expected string
	}{
		{InputQuit, "Quit"},
		{InputRune, "Rune"},
		{InputEnter, "Enter"},
		{InputClick, "Click"},
		{InputKind(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
}

func TestNopAudio(t *testing.T) {
	var a Audio = NopAudio{}
	a.Play(SoundExplosion)
	a.StopMusic()
	a.SetMuted(true)

	if SoundVictory.String() != "victory" {
		t.Errorf("SoundVictory.String() = %q", SoundVictory.String())
	}
}
