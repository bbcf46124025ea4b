package dragonmath

import (
	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
)

// Knight is the player avatar. X eases toward the discrete Milestone.
type Knight struct {
	X         float64
	Milestone int
	Y         int
	Frame     int

	counter    int
	near, far  int
	smoothing  float64
	frames     int
	frameTicks int
}

// NewKnight places a knight at the near bound.
func NewKnight(cfg config.Config) Knight {
	near := cfg.Progression.NearBound
	return Knight{
		X:          float64(near),
		Milestone:  near,
		Y:          cfg.KnightY(),
		near:       near,
		far:        cfg.FarBound(),
		smoothing:  cfg.Animation.Smoothing,
		frames:     cfg.Animation.KnightFrames,
		frameTicks: cfg.Animation.KnightFrameTicks,
	}
}

// Update eases X toward the milestone and advances the walk cycle.
func (k *Knight) Update() {
	k.X += (float64(k.Milestone) - k.X) * k.smoothing
	k.X = core.ClampF(k.X, float64(k.near), float64(k.far))

	k.counter++
	if k.counter >= k.frameTicks {
		k.Frame = (k.Frame + 1) % k.frames
		k.counter = 0
	}
}

// Advance moves the milestone forward and reports whether it reached the
// far bound.
func (k *Knight) Advance(step int) bool {
	k.Milestone = core.Clamp(k.Milestone+step, k.near, k.far)
	return k.AtFar()
}

// Retreat moves the milestone back, stopping at the near bound.
func (k *Knight) Retreat(step int) {
	k.Milestone = core.Clamp(k.Milestone-step, k.near, k.far)
}

// AtFar reports whether the milestone is at the far bound.
func (k *Knight) AtFar() bool {
	return k.Milestone >= k.far
}

// Restart sends the milestone back to the near bound. X keeps easing from
// wherever it is.
func (k *Knight) Restart() {
	k.Milestone = k.near
}

// Bounds returns the near and far milestone bounds.
func (k *Knight) Bounds() (near, far int) {
	return k.near, k.far
}
