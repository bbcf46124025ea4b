package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestDefaultDerivedValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.FarBound() != 700 {
		t.Errorf("FarBound() = %d, expected 700", cfg.FarBound())
	}
	if cfg.KnightY() != 500 {
		t.Errorf("KnightY() = %d, expected 500", cfg.KnightY())
	}
	if got := cfg.ScoreDisplayTicks(0); got != 165 {
		t.Errorf("ScoreDisplayTicks(0) = %d, expected 165", got)
	}
	if got := cfg.ScoreDisplayTicks(20); got != 100 {
		t.Errorf("ScoreDisplayTicks(20) = %d, expected 100", got)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("progression:\n  stages: 5\nleaderboard:\n  top_n: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if cfg.Progression.Stages != 5 {
		t.Errorf("Stages = %d, expected 5", cfg.Progression.Stages)
	}
	if cfg.Leaderboard.TopN != 10 {
		t.Errorf("TopN = %d, expected 10", cfg.Leaderboard.TopN)
	}
	// Untouched keys keep their defaults
	if cfg.Placement.MinDistance != 350 {
		t.Errorf("MinDistance = %v, expected 350", cfg.Placement.MinDistance)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("playfield: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("progression:\n  operand_min: 9\n  operand_max: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of an invalid range = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Playfield.Width = 0 }},
		{"no stages", func(c *Config) { c.Progression.Stages = 0 }},
		{"zero step", func(c *Config) { c.Progression.Step = 0 }},
		{"near past far", func(c *Config) { c.Progression.NearBound = 750 }},
		{"no dragons", func(c *Config) { c.Placement.InitialDragons = 0 }},
		{"zero tick rate", func(c *Config) { c.Timing.TickRate = 0 }},
		{"loud volume", func(c *Config) { c.Audio.Volume = 1.5 }},
		{"no smoothing", func(c *Config) { c.Animation.Smoothing = 0 }},
		{"insets cover width", func(c *Config) { c.Placement.InsetLow, c.Placement.InsetHigh = 400, 400 }},
		{"insets cover height", func(c *Config) { c.Placement.InsetHigh = 449 }},
		{"negative inset", func(c *Config) { c.Placement.InsetLow = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateNarrowInsetWindow(t *testing.T) {
	cfg := DefaultConfig()
	// 150 < x < 152 and 150 < y < 152 still leave one coordinate each
	cfg.Playfield.Width = 402
	cfg.Playfield.Height = 402
	cfg.Placement.InsetHigh = 250
	cfg.Placement.FallbackMargin = 200
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}

	cfg.Playfield.Width = 401
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Validate() with an empty x window = %v, expected ErrInvalid", err)
	}
}
