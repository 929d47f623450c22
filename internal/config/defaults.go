package config

import (
	_ "embed"
)

//go:embed defaults/nuwa.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It mirrors the embedded
// YAML and is the last resort when nothing else parses.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  480,
			Height: 640,
		},
		Physics: PhysicsConfig{
			Gravity:     0.5,
			JumpImpulse: -12,
			MoveSpeed:   5,
		},
		Player: PlayerConfig{
			Width:  30,
			Height: 40,
		},
		Generator: GeneratorConfig{
			PlatformFloor:  15,
			MinGap:         50,
			MaxGap:         110,
			ReachHeight:    135,
			ReachScale:     1.5,
			MinWidth:       60,
			MaxWidth:       90,
			PlatformHeight: 10,
			Seed: SeedConfig{
				Count:       7,
				Spacing:     90,
				MinWidth:    70,
				MaxWidth:    100,
				StartOffset: 100,
				StartWidth:  80,
			},
		},
		Spawn: SpawnConfig{
			RareThreshold:  98,
			StoneThreshold: 90,
			Stone:          ItemConfig{Width: 15, Height: 15, Lift: 25},
			Leg:            ItemConfig{Width: 20, Height: 40, Lift: 30},
		},
		Hazards: HazardConfig{
			BaseChance:   1,
			DistanceStep: 1500,
			MinPlayerGap: 60,
			Width:        30,
			Height:       30,
			MinSpeed:     3,
			MaxSpeed:     7,
			SpawnMinY:    -600,
			SpawnMaxY:    -50,
		},
		Win: WinConfig{
			Distance: 3000,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
