package skyjump

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
)

// ErrNoPlatforms is returned when a query needs the highest platform but
// none are live. Seeding and regeneration make this unreachable.
var ErrNoPlatforms = errors.New("skyjump: no live platforms")

// Rand is the source of uniform draws. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// randint draws uniformly from the closed range [lo, hi].
func randint(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Placement describes how a generated platform relates to the one below it.
type Placement struct {
	Gap   float64 // Vertical rise from the previous top
	Reach float64 // Horizontal displacement allowed for Gap
	DX    float64 // Signed displacement drawn before clamping
	Width float64
}

// Generator creates platforms above the current highest one and attaches
// collectibles to them.
type Generator struct {
	screen  config.ScreenConfig
	gen     config.GeneratorConfig
	spawn   config.SpawnConfig
	player  config.PlayerConfig
	rng     Rand
	logger  *log.Logger
	created int
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg config.Config, rng Rand, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		screen: cfg.Screen,
		gen:    cfg.Generator,
		spawn:  cfg.Spawn,
		player: cfg.Player,
		rng:    rng,
		logger: logger,
	}
}

// Created returns how many platforms this generator has produced.
func (g *Generator) Created() int {
	return g.created
}

// Highest returns the platform with the smallest y.
// Ties keep the earliest in list order.
func Highest(platforms []Entity) (Entity, error) {
	if len(platforms) == 0 {
		return Entity{}, ErrNoPlatforms
	}
	best := platforms[0]
	for _, p := range platforms[1:] {
		if p.Box.Y < best.Box.Y {
			best = p
		}
	}
	return best, nil
}

// Next creates a platform reachable from top in a single jump.
func (g *Generator) Next(top Entity) (Entity, Placement) {
	gap := randint(g.rng, g.gen.MinGap, g.gen.MaxGap)
	return g.place(top, float64(gap), g.gen.MinWidth, g.gen.MaxWidth)
}

// place puts a platform gap pixels above top, at most the reach for that
// gap away horizontally, clamped inside the screen.
func (g *Generator) place(top Entity, gap float64, minW, maxW int) (Entity, Placement) {
	reach := MaxReachX(g.gen.ReachHeight, gap, g.gen.ReachScale)
	dx := float64(randint(g.rng, 0, int(math.Floor(reach))))
	if g.rng.Intn(2) == 0 {
		dx = -dx
	}
	width := float64(randint(g.rng, minW, maxW))

	screenW := float64(g.screen.Width)
	center := core.ClampF(top.Box.CenterX()+dx, width/2, screenW-width/2)

	platform := NewPlatform(center-width/2, top.Box.Y-gap, width, g.gen.PlatformHeight)
	g.created++
	return platform, Placement{Gap: gap, Reach: reach, DX: dx, Width: width}
}

// Spawn makes one draw in [1, 100] and may attach the leg or a stone to
// platform. The leg takes priority over stones.
func (g *Generator) Spawn(s *Session, platform Entity) (Entity, bool) {
	r := randint(g.rng, 1, 100)
	cx := platform.Box.CenterX()

	if !s.HasLeg && !s.LegLive() && r > g.spawn.RareThreshold {
		leg := g.spawn.Leg
		return NewLeg(cx, platform.Box.Y-leg.Lift, leg.Width, leg.Height), true
	}

	if r > g.spawn.StoneThreshold {
		candidates := s.Collected.Missing(s.LiveStones())
		if len(candidates) == 0 {
			return Entity{}, false
		}
		id := candidates[g.rng.Intn(len(candidates))]
		stone := g.spawn.Stone
		return NewStone(id, cx, platform.Box.Y-stone.Lift, stone.Width, stone.Height), true
	}

	return Entity{}, false
}

// Regenerate adds exactly one platform, and whatever spawns on it, when
// the session is below the platform floor. It reports whether a platform
// was added.
func (g *Generator) Regenerate(s *Session) (bool, error) {
	if len(s.Platforms) >= g.gen.PlatformFloor {
		return false, nil
	}
	top, err := Highest(s.Platforms)
	if err != nil {
		return false, err
	}

	platform, pl := g.Next(top)
	s.Platforms = append(s.Platforms, platform)
	s.Stats.PlatformsGenerated++

	g.logger.Debug("platform generated",
		"gap", pl.Gap, "dx", pl.DX, "reach", pl.Reach, "width", pl.Width,
		"live", len(s.Platforms))

	if item, ok := g.Spawn(s, platform); ok {
		s.Items = append(s.Items, item)
		if item.Kind == KindStone {
			g.logger.Debug("stone spawned", "stone", item.Stone)
		} else {
			g.logger.Debug("leg spawned")
		}
	}
	return true, nil
}

// Seed builds a fresh session: the start platform, the player standing on
// it, and a column of seed platforms above at fixed spacing.
func (g *Generator) Seed() *Session {
	screenW := float64(g.screen.Width)
	screenH := float64(g.screen.Height)
	seed := g.gen.Seed

	startW := float64(seed.StartWidth)
	start := NewPlatform(screenW/2-startW/2, screenH-float64(seed.StartOffset), startW, g.gen.PlatformHeight)

	s := &Session{
		Player: Player{
			Box: core.NewRectF(
				start.Box.CenterX()-g.player.Width/2,
				start.Box.Y-g.player.Height,
				g.player.Width, g.player.Height),
		},
		Platforms: []Entity{start},
	}

	prev := start
	for i := 0; i < seed.Count; i++ {
		p, _ := g.place(prev, float64(seed.Spacing), seed.MinWidth, seed.MaxWidth)
		s.Platforms = append(s.Platforms, p)
		prev = p
	}
	return s
}
