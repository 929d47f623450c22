package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() disagree:\nyaml: %+v\ncode: %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate, got %v", err)
	}
}

func TestPeakRise(t *testing.T) {
	p := PhysicsConfig{Gravity: 0.5, JumpImpulse: -12}
	if got := p.PeakRise(); got != 144 {
		t.Errorf("PeakRise() = %v, expected 144", got)
	}
	if got := (PhysicsConfig{}).PeakRise(); got != 0 {
		t.Errorf("PeakRise() without gravity = %v, expected 0", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"gap above reach height", func(c *Config) { c.Generator.MaxGap = 140 }},
		{"reach height above peak", func(c *Config) { c.Generator.ReachHeight = 150 }},
		{"empty gap range", func(c *Config) { c.Generator.MinGap = 120 }},
		{"upward gravity", func(c *Config) { c.Physics.Gravity = -0.5 }},
		{"downward impulse", func(c *Config) { c.Physics.JumpImpulse = 12 }},
		{"platform wider than screen", func(c *Config) { c.Generator.MaxWidth = 500 }},
		{"seed spacing unreachable", func(c *Config) { c.Generator.Seed.Spacing = 200 }},
		{"threshold above 100", func(c *Config) { c.Spawn.StoneThreshold = 101 }},
		{"zero floor", func(c *Config) { c.Generator.PlatformFloor = 0 }},
		{"inverted meteor speeds", func(c *Config) { c.Hazards.MinSpeed = 9 }},
		{"zero distance step", func(c *Config) { c.Hazards.DistanceStep = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuwa.yaml")
	data := []byte("win:\n  distance: 5000\ngenerator:\n  platform_floor: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Win.Distance != 5000 {
		t.Errorf("win.distance = %v, expected 5000", cfg.Win.Distance)
	}
	if cfg.Generator.PlatformFloor != 20 {
		t.Errorf("platform_floor = %d, expected 20", cfg.Generator.PlatformFloor)
	}
	if cfg.Physics.Gravity != Default().Physics.Gravity {
		t.Errorf("unset keys should keep defaults, gravity = %v", cfg.Physics.Gravity)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("generator:\n  max_gap: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("unreachable gap should fail validation, got %v", err)
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("malformed YAML should be an error")
	}
}

func TestHazardRamp(t *testing.T) {
	r := NewHazardRamp(HazardConfig{BaseChance: 1, DistanceStep: 1500})

	tests := []struct {
		distance float64
		expected int
	}{
		{0, 1},
		{1499, 1},
		{1500, 2},
		{4600, 4},
		{-10, 1},
	}
	for _, tc := range tests {
		if got := r.Chance(tc.distance); got != tc.expected {
			t.Errorf("Chance(%v) = %d, expected %d", tc.distance, got, tc.expected)
		}
	}

	// Non-increasing chance would break the ramp
	prev := r.Chance(0)
	for d := 0.0; d < 20000; d += 250 {
		c := r.Chance(d)
		if c < prev {
			t.Fatalf("Chance decreased at %v: %d < %d", d, c, prev)
		}
		prev = c
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuwa.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("win:\n  distance: 4242\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Updates:
		if cfg.Win.Distance != 4242 {
			t.Errorf("reloaded win.distance = %v, expected 4242", cfg.Win.Distance)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher reported error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}
}
