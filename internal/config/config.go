// Package config provides YAML-based game configuration loading and
// validation for dragon math.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all tunable parameters of the game.
type Config struct {
	Playfield   PlayfieldConfig   `yaml:"playfield"`
	Placement   PlacementConfig   `yaml:"placement"`
	Progression ProgressionConfig `yaml:"progression"`
	Animation   AnimationConfig   `yaml:"animation"`
	Timing      TimingConfig      `yaml:"timing"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Audio       AudioConfig       `yaml:"audio"`
}

// PlayfieldConfig defines the logical playfield and sprite sizes in pixels.
type PlayfieldConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	DragonSize   int `yaml:"dragon_size"`
	KnightSize   int `yaml:"knight_size"`
	KnightOffset int `yaml:"knight_offset"` // distance of the knight row from the bottom edge
}

// PlacementConfig defines the dragon spawn placement constraints.
type PlacementConfig struct {
	InitialDragons int     `yaml:"initial_dragons"`
	MinDistance    float64 `yaml:"min_distance"`
	Jitter         int     `yaml:"jitter"`
	InsetLow       int     `yaml:"inset_low"`       // exclusive lower bound for x and y
	InsetHigh      int     `yaml:"inset_high"`      // exclusive upper bound is size minus this
	FallbackMargin int     `yaml:"fallback_margin"` // fallback range is [margin, size-margin]
}

// ProgressionConfig defines scoring and knight movement.
type ProgressionConfig struct {
	Stages        int `yaml:"stages"`
	CorrectPoints int `yaml:"correct_points"`
	WrongPenalty  int `yaml:"wrong_penalty"`
	Step          int `yaml:"step"`
	NearBound     int `yaml:"near_bound"`
	FarMargin     int `yaml:"far_margin"` // far bound is width minus this
	OperandMin    int `yaml:"operand_min"`
	OperandMax    int `yaml:"operand_max"`
	MaxAnswerLen  int `yaml:"max_answer_len"`
}

// AnimationConfig defines sprite timing in ticks.
type AnimationConfig struct {
	DragonCycle      int     `yaml:"dragon_cycle"`
	DragonFrameTicks int     `yaml:"dragon_frame_ticks"`
	ExplosionFrames  int     `yaml:"explosion_frames"`
	KnightFrames     int     `yaml:"knight_frames"`
	KnightFrameTicks int     `yaml:"knight_frame_ticks"`
	Smoothing        float64 `yaml:"smoothing"`
}

// TimingConfig defines the loop rate and timed screens.
type TimingConfig struct {
	TickRate            int `yaml:"tick_rate"`
	ErrorTicks          int `yaml:"error_ticks"`
	ScoreDisplaySeconds int `yaml:"score_display_seconds"`
}

// LeaderboardConfig defines ranking display limits.
type LeaderboardConfig struct {
	TopN          int `yaml:"top_n"`
	MaxNameLength int `yaml:"max_name_length"`
}

// AudioConfig defines the initial audio state.
type AudioConfig struct {
	Volume float64 `yaml:"volume"` // 0.0 .. 1.0
	Muted  bool    `yaml:"muted"`
}

// FarBound returns the rightmost knight milestone.
func (c Config) FarBound() int {
	return c.Playfield.Width - c.Progression.FarMargin
}

// KnightY returns the fixed knight row.
func (c Config) KnightY() int {
	return c.Playfield.Height - c.Playfield.KnightOffset
}

// ScoreDisplayTicks returns how many ticks the score screen stays up at
// tickRate. A non-positive rate uses the configured one.
func (c Config) ScoreDisplayTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = c.Timing.TickRate
	}
	return c.Timing.ScoreDisplaySeconds * tickRate
}

// Validate reports the first out-of-range value, wrapped in ErrInvalid.
func (c Config) Validate() error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Playfield.Width > 0 && c.Playfield.Height > 0, "playfield size"},
		{c.Playfield.DragonSize > 0, "playfield.dragon_size"},
		{c.Playfield.KnightSize > 0, "playfield.knight_size"},
		{c.Placement.InitialDragons > 0, "placement.initial_dragons"},
		{c.Placement.MinDistance >= 0, "placement.min_distance"},
		{c.Placement.Jitter >= 0, "placement.jitter"},
		{c.Placement.InsetLow >= 0 && c.Placement.InsetHigh >= 0, "placement insets"},
		// The strict bounds must leave at least one coordinate on each axis
		{c.Placement.InsetLow+1 < c.Playfield.Width-c.Placement.InsetHigh, "placement insets exceed playfield width"},
		{c.Placement.InsetLow+1 < c.Playfield.Height-c.Placement.InsetHigh, "placement insets exceed playfield height"},
		{2*c.Placement.FallbackMargin <= c.Playfield.Width && 2*c.Placement.FallbackMargin <= c.Playfield.Height, "placement.fallback_margin"},
		{c.Progression.Stages >= 1, "progression.stages"},
		{c.Progression.Step > 0, "progression.step"},
		{c.Progression.NearBound < c.FarBound(), "progression near/far bounds"},
		{c.Progression.OperandMin <= c.Progression.OperandMax, "progression operand range"},
		{c.Progression.MaxAnswerLen > 0, "progression.max_answer_len"},
		{c.Animation.DragonCycle > 0 && c.Animation.DragonFrameTicks > 0, "animation dragon timing"},
		{c.Animation.ExplosionFrames > 0, "animation.explosion_frames"},
		{c.Animation.KnightFrames > 0 && c.Animation.KnightFrameTicks > 0, "animation knight timing"},
		{c.Animation.Smoothing > 0 && c.Animation.Smoothing <= 1, "animation.smoothing"},
		{c.Timing.TickRate > 0, "timing.tick_rate"},
		{c.Timing.ErrorTicks >= 0 && c.Timing.ScoreDisplaySeconds >= 0, "timing durations"},
		{c.Leaderboard.TopN > 0, "leaderboard.top_n"},
		{c.Leaderboard.MaxNameLength > 0, "leaderboard.max_name_length"},
		{c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.field)
		}
	}
	return nil
}
