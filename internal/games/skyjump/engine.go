package skyjump

import (
	"fmt"
	"math"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
)

// Events is a bitset of what happened during one tick.
type Events uint16

const (
	EventLanded Events = 1 << iota
	EventStoneCollected
	EventLegCollected
	EventHazardHit
	EventFell
	EventWon
	EventPlatformGenerated
	EventMeteorSpawned
)

// Has reports whether every event in f is set.
func (e Events) Has(f Events) bool {
	return e&f == f
}

// TickResult reports the outcome of one engine tick.
type TickResult struct {
	Events Events
	Scroll float64
	Stones []Stone // Collected this tick, in pickup order
}

// Engine advances a session one tick at a time.
type Engine struct {
	physics    Physics
	screen     config.ScreenConfig
	hazards    config.HazardConfig
	win        config.WinConfig
	ramp       *config.HazardRamp
	gen        *Generator
	rng        Rand
	winEnabled bool
}

// NewEngine creates an engine. When winEnabled is false the win check is
// skipped and runs end only by a meteor or a fall.
func NewEngine(cfg config.Config, gen *Generator, rng Rand, winEnabled bool) *Engine {
	return &Engine{
		physics:    NewPhysics(cfg.Physics),
		screen:     cfg.Screen,
		hazards:    cfg.Hazards,
		win:        cfg.Win,
		ramp:       config.NewHazardRamp(cfg.Hazards),
		gen:        gen,
		rng:        rng,
		winEnabled: winEnabled,
	}
}

// Tick runs one step of the world. A finished session is left untouched.
// The only error is an empty platform set, which seeding and
// regeneration rule out.
func (e *Engine) Tick(s *Session, in core.InputFrame) (TickResult, error) {
	var res TickResult
	if s.Over() {
		return res, nil
	}
	s.Ticks++

	e.movePlayer(s, in)
	res.Scroll = e.scroll(s)

	added, err := e.gen.Regenerate(s)
	if err != nil {
		return res, fmt.Errorf("skyjump: tick %d: %w", s.Ticks, err)
	}
	if added {
		res.Events |= EventPlatformGenerated
	}

	if e.spawnMeteor(s) {
		res.Events |= EventMeteorSpawned
	}

	e.advance(s, res.Scroll)

	if e.land(s) {
		res.Events |= EventLanded
	}

	stones, leg := e.pickup(s)
	res.Stones = stones
	if len(stones) > 0 {
		res.Events |= EventStoneCollected
	}
	if leg {
		res.Events |= EventLegCollected
	}

	if e.hitMeteor(s) {
		s.GameOver = true
		res.Events |= EventHazardHit
	}

	if s.Player.Box.Y > float64(e.screen.Height) {
		s.GameOver = true
		res.Events |= EventFell
	}

	if e.winEnabled && !s.GameOver && s.WinReady(e.win.Distance) {
		s.Won = true
		res.Events |= EventWon
	}

	return res, nil
}

// movePlayer applies gravity, steering with wrap, then vertical motion.
func (e *Engine) movePlayer(s *Session, in core.InputFrame) {
	p := &s.Player
	p.VY = ApplyGravity(p.VY, e.physics.Gravity)

	if dir := in.Direction(); dir != 0 {
		p.Steer(float64(dir)*e.physics.MoveSpeed, float64(e.screen.Width))
	}
	p.Box.Y += p.VY
}

// scroll snaps the player back to the midpoint when above it and returns
// how far the world must move down. Never negative.
func (e *Engine) scroll(s *Session) float64 {
	mid := float64(e.screen.Height) / 2
	if s.Player.Box.Y >= mid {
		return 0
	}
	d := mid - s.Player.Box.Y
	s.Player.Box.Y = mid
	s.Distance += d
	return d
}

// spawnMeteor rolls the distance-ramped chance and adds a meteor above
// the screen unless it would fall right onto the player's column.
func (e *Engine) spawnMeteor(s *Session) bool {
	if e.rng.Intn(101) >= e.ramp.Chance(s.Distance) {
		return false
	}
	h := e.hazards
	x := randint(e.rng, 0, e.screen.Width-int(h.Width))
	y := randint(e.rng, h.SpawnMinY, h.SpawnMaxY)
	speed := randint(e.rng, h.MinSpeed, h.MaxSpeed)

	if math.Abs(float64(x)-s.Player.Box.X) <= h.MinPlayerGap {
		return false
	}
	s.Meteors = append(s.Meteors, NewMeteor(float64(x), float64(y), h.Width, h.Height, float64(speed)))
	s.Stats.MeteorsSpawned++
	return true
}

// advance moves the world down by scroll and prunes what left the screen.
func (e *Engine) advance(s *Session, scroll float64) {
	screenH := float64(e.screen.Height)

	s.Platforms = shift(s.Platforms, scroll, screenH)
	s.Items = shift(s.Items, scroll, screenH)

	live := s.Meteors[:0]
	for _, m := range s.Meteors {
		m.Box.Y += m.Speed + scroll
		if m.Box.Y > screenH {
			s.Stats.MeteorsDodged++
			continue
		}
		live = append(live, m)
	}
	s.Meteors = live
}

// shift moves entities down in place, dropping those whose top reached
// the bottom edge.
func shift(entities []Entity, scroll, screenH float64) []Entity {
	live := entities[:0]
	for _, ent := range entities {
		ent.Box.Y += scroll
		if ent.Box.Y >= screenH {
			continue
		}
		live = append(live, ent)
	}
	return live
}

// land resolves at most one landing while the player is falling.
// Among overlapping platforms the player has not fallen through, the one
// with the greatest top wins, then the smaller x, then list order.
func (e *Engine) land(s *Session) bool {
	p := &s.Player
	if p.VY <= 0 {
		return false
	}

	found := false
	var target core.RectF
	for _, plat := range s.Platforms {
		b := plat.Box
		if !p.Box.Intersects(b) || p.Box.Bottom() >= b.Bottom() {
			continue
		}
		if !found || b.Y > target.Y || (b.Y == target.Y && b.X < target.X) {
			target = b
			found = true
		}
	}
	if !found {
		return false
	}

	p.Box.Y = target.Y - p.Box.H
	p.VY = e.physics.JumpVelocity()
	s.Stats.Landings++
	return true
}

// pickup removes every item overlapping the player and records it.
func (e *Engine) pickup(s *Session) ([]Stone, bool) {
	var stones []Stone
	leg := false

	live := s.Items[:0]
	for _, it := range s.Items {
		if !s.Player.Box.Intersects(it.Box) {
			live = append(live, it)
			continue
		}
		switch it.Kind {
		case KindStone:
			s.Collected = s.Collected.With(it.Stone)
			stones = append(stones, it.Stone)
		case KindLeg:
			s.HasLeg = true
			leg = true
		}
	}
	s.Items = live
	return stones, leg
}

func (e *Engine) hitMeteor(s *Session) bool {
	for _, m := range s.Meteors {
		if s.Player.Box.Intersects(m.Box) {
			return true
		}
	}
	return false
}
