package config

import (
	"errors"
	"fmt"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// PeakRise is the highest a single launch can carry the player: J²/(2G).
func (p PhysicsConfig) PeakRise() float64 {
	if p.Gravity <= 0 {
		return 0
	}
	return p.JumpImpulse * p.JumpImpulse / (2 * p.Gravity)
}

// Validate checks that the numbers describe a playable, reachable level.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)
	check(c.Physics.MoveSpeed >= 0, "physics.move_speed must not be negative, got %v", c.Physics.MoveSpeed)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")

	g := c.Generator
	peak := c.Physics.PeakRise()
	check(g.PlatformFloor > 0, "generator.platform_floor must be positive, got %d", g.PlatformFloor)
	check(g.MinGap > 0 && g.MinGap <= g.MaxGap, "generator gap range [%d, %d] is empty", g.MinGap, g.MaxGap)
	check(float64(g.MaxGap) <= g.ReachHeight, "generator.max_gap %d exceeds reach_height %v", g.MaxGap, g.ReachHeight)
	check(g.ReachHeight <= peak, "generator.reach_height %v exceeds the peak jump height %v", g.ReachHeight, peak)
	check(g.ReachScale >= 0, "generator.reach_scale must not be negative, got %v", g.ReachScale)
	check(g.PlatformHeight > 0, "generator.platform_height must be positive")
	check(widthRange(g.MinWidth, g.MaxWidth, c.Screen.Width), "generator width range [%d, %d] does not fit the screen", g.MinWidth, g.MaxWidth)

	s := g.Seed
	check(s.Count >= 0, "generator.seed.count must not be negative")
	check(s.Spacing > 0 && float64(s.Spacing) <= g.ReachHeight, "generator.seed.spacing %d must be in (0, reach_height]", s.Spacing)
	check(widthRange(s.MinWidth, s.MaxWidth, c.Screen.Width), "seed width range [%d, %d] does not fit the screen", s.MinWidth, s.MaxWidth)
	check(s.StartWidth > 0 && s.StartWidth <= c.Screen.Width, "generator.seed.start_width %d does not fit the screen", s.StartWidth)
	check(s.StartOffset > 0 && s.StartOffset < c.Screen.Height, "generator.seed.start_offset %d is off screen", s.StartOffset)

	check(percent(c.Spawn.RareThreshold), "spawn.rare_threshold must be in [0, 100]")
	check(percent(c.Spawn.StoneThreshold), "spawn.stone_threshold must be in [0, 100]")
	check(item(c.Spawn.Stone) && item(c.Spawn.Leg), "spawn item sizes must be positive")

	h := c.Hazards
	check(h.BaseChance >= 0, "hazards.base_chance must not be negative")
	check(h.DistanceStep > 0, "hazards.distance_step must be positive")
	check(h.MinSpeed >= 0 && h.MinSpeed <= h.MaxSpeed, "hazards speed range [%d, %d] is invalid", h.MinSpeed, h.MaxSpeed)
	check(h.SpawnMinY <= h.SpawnMaxY, "hazards spawn band [%d, %d] is empty", h.SpawnMinY, h.SpawnMaxY)
	check(h.Width > 0 && h.Width < float64(c.Screen.Width) && h.Height > 0, "hazards size must fit the screen")

	check(c.Win.Distance >= 0, "win.distance must not be negative")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func widthRange(min, max, screen int) bool {
	return min > 0 && min <= max && max <= screen
}

func percent(v int) bool {
	return v >= 0 && v <= 100
}

func item(i ItemConfig) bool {
	return i.Width > 0 && i.Height > 0
}
