package config

import (
	_ "embed"
)

//go:embed defaults/dragonmath.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:        800,
			Height:       600,
			DragonSize:   100,
			KnightSize:   50,
			KnightOffset: 100,
		},
		Placement: PlacementConfig{
			InitialDragons: 7,
			MinDistance:    350,
			Jitter:         50,
			InsetLow:       150,
			InsetHigh:      250,
			FallbackMargin: 200,
		},
		Progression: ProgressionConfig{
			Stages:        3,
			CorrectPoints: 10,
			WrongPenalty:  5,
			Step:          100,
			NearBound:     100,
			FarMargin:     100,
			OperandMin:    1,
			OperandMax:    10,
			MaxAnswerLen:  6,
		},
		Animation: AnimationConfig{
			DragonCycle:      20,
			DragonFrameTicks: 5,
			ExplosionFrames:  5,
			KnightFrames:     4,
			KnightFrameTicks: 5,
			Smoothing:        0.1,
		},
		Timing: TimingConfig{
			TickRate:            33,
			ErrorTicks:          30,
			ScoreDisplaySeconds: 5,
		},
		Leaderboard: LeaderboardConfig{
			TopN:          5,
			MaxNameLength: 15,
		},
		Audio: AudioConfig{
			Volume: 1.0,
			Muted:  false,
		},
	}
}
