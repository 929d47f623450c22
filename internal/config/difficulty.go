package config

import "math"

// HazardRamp turns climbed distance into the per-tick meteor chance.
// The chance starts at BaseChance percent and gains one percent for every
// DistanceStep pixels climbed, so long sessions get steadily busier.
type HazardRamp struct {
	base int
	step float64
}

// NewHazardRamp creates a ramp from hazard settings.
func NewHazardRamp(cfg HazardConfig) *HazardRamp {
	step := cfg.DistanceStep
	if step <= 0 {
		step = 1 // Prevent division by zero
	}
	return &HazardRamp{base: cfg.BaseChance, step: step}
}

// Chance returns the spawn chance in percent for the given distance.
// A draw in [0, 100] below this value spawns a meteor.
func (r *HazardRamp) Chance(distance float64) int {
	if distance < 0 {
		distance = 0
	}
	return r.base + int(math.Floor(distance/r.step))
}
