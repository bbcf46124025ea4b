package dragonmath

import (
	"math/rand"

	"github.com/vovakirdan/dragon-math/internal/config"
	"github.com/vovakirdan/dragon-math/internal/core"
)

// Placer chooses spawn positions for dragons.
//
// Seven anchors (corners, mid-edges, center) are tried in a fixed order,
// each jittered independently. The first candidate inside the inset bounds
// and at least MinDistance from every existing top-left corner wins. If
// none qualifies the position is drawn uniformly from the fallback range,
// which may break the separation.
type Placer struct {
	rng     *rand.Rand
	width   int
	height  int
	minDist float64
	jitter  int
	low     int
	high    int
	margin  int
}

// NewPlacer creates a placer for the configured playfield.
func NewPlacer(rng *rand.Rand, cfg config.Config) *Placer {
	return &Placer{
		rng:     rng,
		width:   cfg.Playfield.Width,
		height:  cfg.Playfield.Height,
		minDist: cfg.Placement.MinDistance,
		jitter:  cfg.Placement.Jitter,
		low:     cfg.Placement.InsetLow,
		high:    cfg.Placement.InsetHigh,
		margin:  cfg.Placement.FallbackMargin,
	}
}

// Anchors returns the candidate anchors in priority order.
func (p *Placer) Anchors() []core.Point {
	w, h := p.width, p.height
	return []core.Point{
		{X: w / 5, Y: h / 5},
		{X: w / 5 * 4, Y: h / 5},
		{X: w / 5, Y: h / 5 * 4},
		{X: w / 5 * 4, Y: h / 5 * 4},
		{X: w / 2, Y: h / 5},
		{X: w / 2, Y: h / 5 * 4},
		{X: w / 2, Y: h / 2},
	}
}

// Place returns a position for a new dragon. ok is false when the
// fallback branch was used.
func (p *Placer) Place(existing []core.Rect) (x, y int, ok bool) {
	for _, a := range p.Anchors() {
		c := core.Point{X: a.X + p.randBetween(-p.jitter, p.jitter), Y: a.Y + p.randBetween(-p.jitter, p.jitter)}
		if p.InBounds(c) && p.Separated(c, existing) {
			return c.X, c.Y, true
		}
	}
	return p.randBetween(p.margin, p.width-p.margin), p.randBetween(p.margin, p.height-p.margin), false
}

// InBounds reports whether c lies strictly inside the inset bounds.
func (p *Placer) InBounds(c core.Point) bool {
	return p.low < c.X && c.X < p.width-p.high &&
		p.low < c.Y && c.Y < p.height-p.high
}

// Separated reports whether c is at least minDist from every rect's
// top-left corner.
func (p *Placer) Separated(c core.Point, existing []core.Rect) bool {
	for _, r := range existing {
		if core.Dist(c, r.TopLeft()) < p.minDist {
			return false
		}
	}
	return true
}

// randBetween returns a uniform integer in [lo, hi].
func (p *Placer) randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Intn(hi-lo+1)
}
