package skyjump

import "github.com/vovakirdan/nuwa-jump/internal/config"

// Physics holds the motion constants of a session.
// Velocities are pixels per tick, positive = downward.
type Physics struct {
	Gravity   float64 // Downward acceleration per tick
	Jump      float64 // Launch velocity applied on landing (negative)
	MoveSpeed float64 // Horizontal displacement per tick while steering
}

// NewPhysics creates physics constants from config.
func NewPhysics(cfg config.PhysicsConfig) Physics {
	return Physics{
		Gravity:   cfg.Gravity,
		Jump:      cfg.JumpImpulse,
		MoveSpeed: cfg.MoveSpeed,
	}
}

// ApplyGravity returns the velocity after one tick of acceleration.
func ApplyGravity(v, g float64) float64 {
	return v + g
}

// MaxJumpHeight is the peak rise of a launch at velocity jump under
// gravity g: jump² / (2g).
func MaxJumpHeight(jump, g float64) float64 {
	if g <= 0 {
		return 0
	}
	return jump * jump / (2 * g)
}

// MaxReachX approximates the jump envelope linearly: each pixel of height
// left over after climbing gap buys scale pixels of sideways travel.
// It is a tuned heuristic, not the exact parabola.
func MaxReachX(reachHeight, gap, scale float64) float64 {
	reach := (reachHeight - gap) * scale
	if reach < 0 {
		return 0
	}
	return reach
}

// JumpVelocity is the velocity assigned the instant the player lands.
// Landing is the only way velocity becomes negative.
func (p Physics) JumpVelocity() float64 {
	return p.Jump
}

// MaxJumpHeight is the peak rise for these constants.
func (p Physics) MaxJumpHeight() float64 {
	return MaxJumpHeight(p.Jump, p.Gravity)
}
