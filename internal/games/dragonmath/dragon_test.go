package dragonmath

import (
	"testing"

	"github.com/vovakirdan/dragon-math/internal/config"
)

func newTestArena() *Arena {
	return NewArena(config.DefaultConfig())
}

func countSelected(a *Arena) int {
	n := 0
	for _, d := range a.All() {
		if d.Selected() {
			n++
		}
	}
	return n
}

func TestArenaSpawnHandles(t *testing.T) {
	a := newTestArena()
	h1 := a.Spawn(10, 10, false)
	h2 := a.Spawn(300, 10, true)

	if h1 == h2 {
		t.Fatal("handles should be unique")
	}
	d, ok := a.Get(h2)
	if !ok {
		t.Fatal("Get() should find a spawned dragon")
	}
	if !d.Flags.Has(FlagFallback) {
		t.Error("fallback dragon should carry FlagFallback")
	}
	if d.Rect.W != 100 || d.Rect.H != 100 {
		t.Errorf("dragon size = %dx%d, expected 100x100", d.Rect.W, d.Rect.H)
	}
}

func TestArenaClickExclusive(t *testing.T) {
	a := newTestArena()
	first := a.Spawn(0, 0, false)
	second := a.Spawn(300, 0, false)
	a.Spawn(50, 50, false) // overlaps the first, drawn on top

	tests := []struct {
		name     string
		x, y     int
		selected Handle // 0 means none
	}{
		{"select second", 350, 50, second},
		{"switch to first", 10, 10, first},
		{"toggle first off", 10, 10, 0},
		{"select first again", 10, 10, first},
		{"empty space clears", 700, 500, 0},
	}

	for _, tc := range tests {
		a.Click(tc.x, tc.y)
		if n := countSelected(a); n > 1 {
			t.Fatalf("%s: %d dragons selected", tc.name, n)
		}
		if tc.selected == 0 {
			if a.AnySelected() {
				t.Errorf("%s: expected no selection", tc.name)
			}
			continue
		}
		d, _ := a.Get(tc.selected)
		if !d.Selected() {
			t.Errorf("%s: dragon %d should be selected", tc.name, tc.selected)
		}
	}
}

func TestArenaClickTopmost(t *testing.T) {
	a := newTestArena()
	a.Spawn(0, 0, false)
	top := a.Spawn(50, 50, false)

	h, ok := a.Click(75, 75)
	if !ok || h != top {
		t.Errorf("Click() = %d, %v; expected the topmost dragon %d", h, ok, top)
	}
}

func TestArenaExplosionLifecycle(t *testing.T) {
	a := newTestArena()
	h := a.Spawn(0, 0, false)
	a.Click(10, 10)

	if n := a.ExplodeSelected(); n != 1 {
		t.Fatalf("ExplodeSelected() = %d, expected 1", n)
	}
	d, _ := a.Get(h)
	if d.Selected() || !d.Exploding() {
		t.Fatalf("flags after explode = %b", d.Flags)
	}

	sounds := 0
	onExplode := func(Handle) { sounds++ }

	// Exploding dragons cannot be selected
	if _, ok := a.Click(10, 10); ok {
		t.Error("Click() should ignore exploding dragons")
	}

	last := -1
	ticks := 0
	for a.Len() > 0 {
		a.Update(onExplode)
		if d, ok := a.Get(h); ok {
			if d.Explosion < last {
				t.Fatalf("explosion counter went backwards: %d -> %d", last, d.Explosion)
			}
			last = d.Explosion
		}
		a.Sweep()
		ticks++
		if ticks > 20 {
			t.Fatal("exploding dragon was never swept")
		}
	}

	if sounds != 1 {
		t.Errorf("explosion sound played %d times, expected 1", sounds)
	}
	// One tick for the sound plus one per explosion frame
	if ticks != 6 {
		t.Errorf("dragon swept after %d ticks, expected 6", ticks)
	}
}

func TestArenaSweepKeepsSteady(t *testing.T) {
	a := newTestArena()
	a.Spawn(0, 0, false)
	a.Spawn(300, 0, false)

	for i := 0; i < 50; i++ {
		a.Update(nil)
		if removed := a.Sweep(); removed != 0 {
			t.Fatalf("Sweep() removed %d steady dragons", removed)
		}
	}
	for _, d := range a.All() {
		if d.Anim < 0 || d.Anim >= 20 {
			t.Errorf("Anim = %d, expected within [0, 20)", d.Anim)
		}
		if f := a.SpriteFrame(d); f < 0 || f > 3 {
			t.Errorf("SpriteFrame() = %d, expected within [0, 3]", f)
		}
	}
}

func TestArenaRemoveLive(t *testing.T) {
	a := newTestArena()
	a.Spawn(0, 0, false)
	a.Spawn(300, 0, false)
	a.Click(10, 10)
	a.ExplodeSelected()

	a.RemoveLive()
	if a.Len() != 1 || a.Live() != 0 {
		t.Errorf("after RemoveLive: Len=%d Live=%d, expected 1 and 0", a.Len(), a.Live())
	}
	if len(a.LiveRects()) != 0 {
		t.Error("LiveRects() should be empty")
	}
}
