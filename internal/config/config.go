// Package config provides YAML-based tuning for the jumper: physics,
// level generation, spawn rates, hazards and the win condition.
package config

// Config contains every tunable of a session.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Generator GeneratorConfig `yaml:"generator"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Hazards   HazardConfig    `yaml:"hazards"`
	Win       WinConfig       `yaml:"win"`
}

// ScreenConfig is the size of the play area in world pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines vertical motion and steering.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Launch velocity on landing (negative = up)
	MoveSpeed   float64 `yaml:"move_speed"`   // Horizontal pixels per tick while held
}

// PlayerConfig defines the player's hitbox.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GeneratorConfig drives procedural platform placement.
type GeneratorConfig struct {
	PlatformFloor  int        `yaml:"platform_floor"`  // Regenerate while fewer platforms are live
	MinGap         int        `yaml:"min_gap"`         // Smallest vertical rise between platforms
	MaxGap         int        `yaml:"max_gap"`         // Largest vertical rise (conservative cap)
	ReachHeight    float64    `yaml:"reach_height"`    // Jump height used by the reach formula
	ReachScale     float64    `yaml:"reach_scale"`     // Horizontal pixels per pixel of spare height
	MinWidth       int        `yaml:"min_width"`       // Platform width range
	MaxWidth       int        `yaml:"max_width"`
	PlatformHeight float64    `yaml:"platform_height"` // Fixed platform thickness
	Seed           SeedConfig `yaml:"seed"`
}

// SeedConfig describes the platforms present when a session starts.
type SeedConfig struct {
	Count       int `yaml:"count"`        // Platforms above the start platform
	Spacing     int `yaml:"spacing"`      // Vertical distance between seed platforms
	MinWidth    int `yaml:"min_width"`
	MaxWidth    int `yaml:"max_width"`
	StartOffset int `yaml:"start_offset"` // Start platform top, measured up from the bottom edge
	StartWidth  int `yaml:"start_width"`
}

// SpawnConfig tunes collectible placement on fresh platforms.
type SpawnConfig struct {
	RareThreshold  int        `yaml:"rare_threshold"`  // Draw in [1,100] must exceed this for the leg
	StoneThreshold int        `yaml:"stone_threshold"` // Draw in [1,100] must exceed this for a stone
	Stone          ItemConfig `yaml:"stone"`
	Leg            ItemConfig `yaml:"leg"`
}

// ItemConfig is the footprint of a collectible and how far above the
// platform top its center sits.
type ItemConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Lift   float64 `yaml:"lift"`
}

// HazardConfig tunes meteors.
type HazardConfig struct {
	BaseChance   int     `yaml:"base_chance"`    // Percent chance per tick at distance 0
	DistanceStep float64 `yaml:"distance_step"`  // Each step of distance adds one percent
	MinPlayerGap float64 `yaml:"min_player_gap"` // Spawns this close to the player column are discarded
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MinSpeed     int     `yaml:"min_speed"`
	MaxSpeed     int     `yaml:"max_speed"`
	SpawnMinY    int     `yaml:"spawn_min_y"` // Spawn band above the visible area
	SpawnMaxY    int     `yaml:"spawn_max_y"`
}

// WinConfig defines what completes the story besides holding every item.
type WinConfig struct {
	Distance float64 `yaml:"distance"` // Climb that must be exceeded
}
