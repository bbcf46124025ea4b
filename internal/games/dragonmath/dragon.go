package dragonmath

import (
	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
)

// Handle identifies a dragon for the lifetime of an arena. Handles are
// never reused.
type Handle uint32

// Flags is a bitfield of per-dragon state.
type Flags uint8

const (
	FlagSelected    Flags = 1 << iota // outlined, will explode on a correct answer
	FlagExploding                     // explosion sequence running
	FlagSoundPlayed                   // explosion sound already requested
	FlagFallback                      // placed by the fallback branch
)

// Has reports whether every bit in f2 is set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Dragon is one target on the playfield.
type Dragon struct {
	Handle    Handle
	Rect      core.Rect
	Anim      int // 0 .. cycle-1
	Explosion int // explosion frames already shown
	Flags     Flags
}

// Selected reports whether the dragon is selected.
func (d Dragon) Selected() bool { return d.Flags.Has(FlagSelected) }

// Exploding reports whether the dragon's explosion has started.
func (d Dragon) Exploding() bool { return d.Flags.Has(FlagExploding) }

// Arena owns the live dragons and their lifecycle.
type Arena struct {
	dragons []Dragon
	next    Handle

	size            int
	cycle           int
	frameTicks      int
	explosionFrames int
}

// NewArena creates an empty arena.
func NewArena(cfg config.Config) *Arena {
	return &Arena{
		next:            1,
		size:            cfg.Playfield.DragonSize,
		cycle:           cfg.Animation.DragonCycle,
		frameTicks:      cfg.Animation.DragonFrameTicks,
		explosionFrames: cfg.Animation.ExplosionFrames,
	}
}

// Spawn adds a dragon with its top-left corner at (x, y).
func (a *Arena) Spawn(x, y int, fallback bool) Handle {
	h := a.next
	a.next++

	d := Dragon{Handle: h, Rect: core.NewRect(x, y, a.size, a.size)}
	if fallback {
		d.Flags |= FlagFallback
	}
	a.dragons = append(a.dragons, d)
	return h
}

// Get returns the dragon with handle h.
func (a *Arena) Get(h Handle) (Dragon, bool) {
	for _, d := range a.dragons {
		if d.Handle == h {
			return d, true
		}
	}
	return Dragon{}, false
}

// All returns a copy of every dragon in spawn order.
func (a *Arena) All() []Dragon {
	out := make([]Dragon, len(a.dragons))
	copy(out, a.dragons)
	return out
}

// Len returns the number of dragons, exploding ones included.
func (a *Arena) Len() int {
	return len(a.dragons)
}

// Live returns the number of dragons that are not exploding.
func (a *Arena) Live() int {
	n := 0
	for _, d := range a.dragons {
		if !d.Exploding() {
			n++
		}
	}
	return n
}

// LiveRects returns the rectangles of every non-exploding dragon.
func (a *Arena) LiveRects() []core.Rect {
	rects := make([]core.Rect, 0, len(a.dragons))
	for _, d := range a.dragons {
		if !d.Exploding() {
			rects = append(rects, d.Rect)
		}
	}
	return rects
}

// Click applies an exclusive click-to-toggle at (x, y). The topmost
// non-exploding dragon under the point flips its selection and every other
// dragon is deselected. It returns the toggled dragon, if any.
func (a *Arena) Click(x, y int) (Handle, bool) {
	hit := -1
	for i := len(a.dragons) - 1; i >= 0; i-- {
		d := a.dragons[i]
		if !d.Exploding() && d.Rect.Contains(x, y) {
			hit = i
			break
		}
	}

	for i := range a.dragons {
		if i == hit {
			a.dragons[i].Flags ^= FlagSelected
		} else {
			a.dragons[i].Flags &^= FlagSelected
		}
	}

	if hit < 0 {
		return 0, false
	}
	return a.dragons[hit].Handle, true
}

// AnySelected reports whether at least one dragon is selected.
func (a *Arena) AnySelected() bool {
	for _, d := range a.dragons {
		if d.Selected() {
			return true
		}
	}
	return false
}

// ExplodeSelected starts the explosion of every selected dragon and
// returns how many were marked.
func (a *Arena) ExplodeSelected() int {
	n := 0
	for i := range a.dragons {
		d := &a.dragons[i]
		if d.Selected() {
			d.Flags = d.Flags&^FlagSelected | FlagExploding
			n++
		}
	}
	return n
}

// Update advances every dragon by one tick. Steady dragons cycle their
// animation; an exploding dragon requests its sound on its first exploding
// tick and advances its explosion counter on the ticks after that.
func (a *Arena) Update(onExplode func(Handle)) {
	for i := range a.dragons {
		d := &a.dragons[i]
		if !d.Exploding() {
			d.Anim = (d.Anim + 1) % a.cycle
			continue
		}
		if !d.Flags.Has(FlagSoundPlayed) {
			d.Flags |= FlagSoundPlayed
			if onExplode != nil {
				onExplode(d.Handle)
			}
			continue
		}
		if d.Explosion < a.explosionFrames {
			d.Explosion++
		}
	}
}

// Done reports whether d has shown every explosion frame.
func (a *Arena) Done(d Dragon) bool {
	return d.Exploding() && d.Explosion >= a.explosionFrames
}

// Sweep removes finished dragons and returns how many were removed.
func (a *Arena) Sweep() int {
	kept := a.dragons[:0]
	for _, d := range a.dragons {
		if !a.Done(d) {
			kept = append(kept, d)
		}
	}
	removed := len(a.dragons) - len(kept)
	clear(a.dragons[len(kept):])
	a.dragons = kept
	return removed
}

// RemoveLive drops every non-exploding dragon, letting running
// explosions finish.
func (a *Arena) RemoveLive() {
	kept := a.dragons[:0]
	for _, d := range a.dragons {
		if d.Exploding() {
			kept = append(kept, d)
		}
	}
	clear(a.dragons[len(kept):])
	a.dragons = kept
}

// SpriteFrame maps d's animation index to a sprite frame.
func (a *Arena) SpriteFrame(d Dragon) int {
	return d.Anim / a.frameTicks
}
