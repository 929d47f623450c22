// Package sim plays whole sessions headlessly with a bot. It drives the
// same game code as the frontends and is used to check that generated
// levels stay climbable under a given tuning.
package sim

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/core"
	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
	"github.com/vovakirdan/nuwa-jump/internal/logging"
)

// Default limits.
const (
	DefaultRuns     = 10
	DefaultMaxTicks = 20_000
)

// checkEvery is how many ticks pass between context checks.
const checkEvery = 256

// Options configures a batch of runs.
type Options struct {
	Runs     int
	MaxTicks int          // Runs still going after this many ticks stop as timed out
	Seed     int64        // Run i uses Seed+i; zero means 1
	Mode     skyjump.Mode // Defaults to story
	Workers  int          // Parallel runs; defaults to GOMAXPROCS
	Logger   *log.Logger
}

// RunResult is the outcome of one run.
type RunResult struct {
	Seed     int64
	Distance float64
	Stones   int
	HasLeg   bool
	Won      bool
	GameOver bool
	TimedOut bool
	Ticks    uint64
	Stats    skyjump.Stats
}

// Report aggregates a batch.
type Report struct {
	Mode         skyjump.Mode
	Results      []RunResult
	WinRate      float64
	MeanDistance float64
	MeanStones   float64
	BestDistance float64
	LegRate      float64
}

// Run plays opts.Runs sessions and aggregates them. It stops early and
// returns the context's error when ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, opts Options) (Report, error) {
	opts = withDefaults(opts)
	if err := cfg.Validate(); err != nil {
		return Report{Mode: opts.Mode}, fmt.Errorf("sim: %w", err)
	}

	results := make([]RunResult, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := range opts.Runs {
		seed := opts.Seed + int64(i)
		g.Go(func() error {
			res, err := playOne(ctx, cfg, opts, seed)
			if err != nil {
				return err
			}
			results[i] = res
			opts.Logger.Debug("run finished", "seed", seed, "distance", int(res.Distance),
				"stones", res.Stones, "won", res.Won, "ticks", res.Ticks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{Mode: opts.Mode}, fmt.Errorf("sim: %w", err)
	}

	report := Summarize(opts.Mode, results)
	opts.Logger.Info("simulation complete", "mode", opts.Mode, "runs", len(results),
		"win_rate", report.WinRate, "mean_distance", int(report.MeanDistance))
	return report, nil
}

func withDefaults(opts Options) Options {
	if opts.Runs <= 0 {
		opts.Runs = DefaultRuns
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = DefaultMaxTicks
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	if opts.Mode == "" {
		opts.Mode = skyjump.ModeStory
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return opts
}

// playOne runs a single session from the home screen to its end.
func playOne(ctx context.Context, cfg config.Config, opts Options, seed int64) (RunResult, error) {
	game := skyjump.NewWithConfig(opts.Mode, cfg, opts.Logger.With("seed", seed))
	game.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	game.Step(core.FrameOf(core.ActionConfirm))

	bot := NewBot(cfg)
	for tick := 0; tick < opts.MaxTicks; tick++ {
		if tick%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return RunResult{}, err
			}
		}
		if game.State().Finished() {
			break
		}
		game.Step(bot.Decide(game.Session()))
	}

	s := game.Session()
	res := game.Result()
	return RunResult{
		Seed:     seed,
		Distance: res.Distance,
		Stones:   res.Stones,
		HasLeg:   res.HasLeg,
		Won:      res.Won,
		GameOver: s.GameOver,
		TimedOut: !s.Over(),
		Ticks:    res.Ticks,
		Stats:    s.Stats,
	}, nil
}

// Summarize computes the aggregates of a batch.
func Summarize(mode skyjump.Mode, results []RunResult) Report {
	r := Report{Mode: mode, Results: results}
	if len(results) == 0 {
		return r
	}

	var wins, legs, stones int
	var distance float64
	for _, res := range results {
		if res.Won {
			wins++
		}
		if res.HasLeg {
			legs++
		}
		stones += res.Stones
		distance += res.Distance
		r.BestDistance = max(r.BestDistance, res.Distance)
	}

	n := float64(len(results))
	r.WinRate = float64(wins) / n
	r.LegRate = float64(legs) / n
	r.MeanStones = float64(stones) / n
	r.MeanDistance = distance / n
	return r
}
