package sim

import (
	"math"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
)

// Bot is a greedy autopilot. Each tick it picks a target and holds the
// direction that closes the horizontal gap fastest, wrapping around the
// screen edges when that is shorter.
type Bot struct {
	screenW   float64
	rise      float64 // Highest a launch can carry the player
	moveSpeed float64
}

// NewBot creates a bot for the given tuning.
func NewBot(cfg config.Config) *Bot {
	return &Bot{
		screenW:   float64(cfg.Screen.Width),
		rise:      cfg.Physics.PeakRise(),
		moveSpeed: cfg.Physics.MoveSpeed,
	}
}

// Decide returns the input for the next tick.
func (b *Bot) Decide(s *skyjump.Session) core.InputFrame {
	in := core.NewInputFrame()
	target, ok := b.Target(s)
	if !ok {
		return in
	}

	switch dx := b.offset(s.Player.Box.CenterX(), target.CenterX()); {
	case dx > b.moveSpeed/2:
		in.Set(core.ActionRight)
	case dx < -b.moveSpeed/2:
		in.Set(core.ActionLeft)
	}
	return in
}

// Target picks what to steer toward: a live item within one launch, else
// the lowest platform above the player's feet that a launch can reach,
// else the platform below closest in x.
func (b *Bot) Target(s *skyjump.Session) (core.RectF, bool) {
	feet := s.Player.Box.Bottom()

	var (
		best  core.RectF
		found bool
		score = math.Inf(1)
	)
	for _, it := range s.Items {
		if rise := feet - it.Box.Bottom(); rise >= 0 && rise <= b.rise {
			if d := math.Abs(b.offset(s.Player.Box.CenterX(), it.Box.CenterX())); d < score {
				best, found, score = it.Box, true, d
			}
		}
	}
	if found {
		return best, true
	}

	score = math.Inf(1)
	for _, p := range s.Platforms {
		rise := feet - p.Box.Y
		if rise <= 0 || rise > b.rise {
			continue
		}
		if rise < score {
			best, found, score = p.Box, true, rise
		}
	}
	if found {
		return best, true
	}

	score = math.Inf(1)
	for _, p := range s.Platforms {
		if p.Box.Y < feet {
			continue
		}
		if d := math.Abs(b.offset(s.Player.Box.CenterX(), p.Box.CenterX())); d < score {
			best, found, score = p.Box, true, d
		}
	}
	return best, found
}

// offset is the signed horizontal distance from x to tx, taking the
// shorter way around the wrapping screen.
func (b *Bot) offset(x, tx float64) float64 {
	dx := tx - x
	if b.screenW <= 0 {
		return dx
	}
	switch {
	case dx > b.screenW/2:
		dx -= b.screenW
	case dx < -b.screenW/2:
		dx += b.screenW
	}
	return dx
}
