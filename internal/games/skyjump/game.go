// Package skyjump implements Nuwa's ascent: a vertically scrolling
// platform jumper where landing launches the player upward, the five
// colored stones and the leg of Ao must be collected, and meteors fall
// faster the higher she climbs.
package skyjump

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/registry"
)

// Phase is the state machine position of a game.
type Phase uint8

const (
	PhaseHome Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseWon
	PhaseQuit
)

// String returns a readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseHome:
		return "home"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseWon:
		return "won"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Mode selects whether the win condition is active.
type Mode string

const (
	ModeStory   Mode = "story"   // Win by holding every item past the distance
	ModeEndless Mode = "endless" // Climb until a meteor or a fall ends the run
)

// configPath stores the custom config path set via CLI
var configPath string

// logger is shared by games created through the registry.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Result summarizes a finished or abandoned run.
type Result struct {
	Mode     Mode
	Distance float64
	Stones   int
	HasLeg   bool
	Won      bool
	Ticks    uint64
}

// Game owns the session and runs the Home/Playing/GameOver/Won machine.
type Game struct {
	mode    Mode
	cfg     config.Config
	fixed   bool           // cfg was supplied by the caller; Reset keeps it
	pending *config.Config // Applied at the next restart
	logger  *log.Logger

	runtime core.RuntimeConfig
	rng     *rand.Rand
	gen     *Generator
	engine  *Engine
	session *Session

	phase  Phase
	paused bool
	best   float64
}

// New creates a story mode game. Config is loaded on Reset.
func New() *Game {
	return &Game{mode: ModeStory, logger: logger}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, logger: logger}
}

// NewWithConfig creates a game that keeps cfg across resets.
func NewWithConfig(mode Mode, cfg config.Config, l *log.Logger) *Game {
	if l == nil {
		l = log.New(io.Discard)
	}
	return &Game{mode: mode, cfg: cfg, fixed: true, logger: l}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "skyjump_endless"
	}
	return "skyjump"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Nuwa: Endless Ascent"
	}
	return "Nuwa: Patching the Sky"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset loads config, reseeds the RNG and returns to the home screen
// with a fresh session ready.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.Load(configPath)
		if err != nil {
			g.logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
			cfg = config.Default()
		}
		g.cfg = cfg
	}
	g.pending = nil

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.phase = PhaseHome
	g.paused = false
	g.newSession()
}

// newSession rebuilds the generator and engine from the current config
// and seeds a fresh world.
func (g *Game) newSession() {
	g.gen = NewGenerator(g.cfg, g.rng, g.logger)
	g.engine = NewEngine(g.cfg, g.gen, g.rng, g.mode == ModeStory)
	g.session = g.gen.Seed()
}

// Restart discards the session and starts playing a fresh one.
func (g *Game) Restart() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.logger.Info("reloaded config applied")
	}
	g.newSession()
	g.phase = PhasePlaying
	g.paused = false
	g.logger.Info("restart", "mode", g.mode, "best", int(g.best))
}

// SetConfig replaces the tuning. On the home screen it applies at once;
// otherwise it waits for the next restart so a run never changes rules
// midway.
func (g *Game) SetConfig(cfg config.Config) {
	if g.phase == PhaseHome {
		g.cfg = cfg
		g.pending = nil
		g.newSession()
		return
	}
	g.pending = &cfg
}

// Config returns the active tuning.
func (g *Game) Config() config.Config {
	return g.cfg
}

// SetBest seeds the best distance, usually from stored runs.
func (g *Game) SetBest(best float64) {
	if best > g.best {
		g.best = best
	}
}

// Step advances the state machine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.phase = PhaseQuit
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseHome:
		if in.Has(core.ActionConfirm) {
			g.phase = PhasePlaying
			g.logger.Info("ascent started", "mode", g.mode)
		}
	case PhasePlaying:
		g.play(in)
	case PhaseGameOver, PhaseWon:
		if in.Has(core.ActionConfirm) {
			g.Restart()
		}
	}

	return core.StepResult{State: g.State()}
}

// play runs one engine tick unless paused.
func (g *Game) play(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	res, err := g.engine.Tick(g.session, in)
	if err != nil {
		panic(err)
	}

	s := g.session
	if s.Distance > g.best {
		g.best = s.Distance
	}
	for _, st := range res.Stones {
		g.logger.Info("stone collected", "stone", st, "held", s.Collected.Count())
	}
	if res.Events.Has(EventLegCollected) {
		g.logger.Info("leg of Ao collected")
	}

	switch {
	case s.Won:
		g.phase = PhaseWon
		g.logger.Info("sky patched", "distance", int(s.Distance), "ticks", s.Ticks)
	case s.GameOver:
		g.phase = PhaseGameOver
		cause := "meteor"
		if res.Events.Has(EventFell) && !res.Events.Has(EventHazardHit) {
			cause = "fall"
		}
		g.logger.Info("game over", "cause", cause, "distance", int(s.Distance),
			"stones", s.Collected.Count(), "leg", s.HasLeg)
	}
}

// Phase returns the state machine position.
func (g *Game) Phase() Phase {
	return g.phase
}

// Paused reports whether play is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// Session returns the live session. Callers must not keep it across
// restarts.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the coarse status for the platform.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.session.Distance),
		GameOver: g.phase == PhaseGameOver,
		Won:      g.phase == PhaseWon,
		Paused:   g.paused,
		Quit:     g.phase == PhaseQuit,
	}
}

// Result summarizes the current run.
func (g *Game) Result() Result {
	s := g.session
	if s == nil {
		return Result{Mode: g.mode}
	}
	return Result{
		Mode:     g.mode,
		Distance: s.Distance,
		Stones:   s.Collected.Count(),
		HasLeg:   s.HasLeg,
		Won:      s.Won,
		Ticks:    s.Ticks,
	}
}

// Snapshot copies the current frame for renderers.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Phase: g.phase, Mode: g.mode}
	}
	snap := snapshot(g.session)
	snap.Phase = g.phase
	snap.Mode = g.mode
	snap.Paused = g.paused
	snap.Width = float64(g.cfg.Screen.Width)
	snap.Height = float64(g.cfg.Screen.Height)
	snap.Best = g.best
	snap.WinDistance = g.cfg.Win.Distance
	return snap
}

// Register the games with the registry
func init() {
	registry.Register("skyjump", func() registry.Game {
		return New()
	})
	registry.Register("skyjump_endless", func() registry.Game {
		return NewEndless()
	})
}
