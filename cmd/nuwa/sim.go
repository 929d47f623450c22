package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nuwa-jump/internal/config"
	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
	"github.com/vovakirdan/nuwa-jump/internal/sim"
)

var (
	flagRuns    int
	flagTicks   int
	flagWorkers int
	flagVerbose bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Let a bot play headless runs",
	Long: `Play many runs with a simple bot and report how far it got.
Useful for checking that a tuning file keeps levels climbable.
Run i uses seed --seed+i, so results are reproducible.

Examples:
  nuwa sim
  nuwa sim endless --runs 200 --workers 8
  nuwa sim --config ./nuwa.yaml --seed 7 -v`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", sim.DefaultRuns, "Number of runs")
	simCmd.Flags().IntVar(&flagTicks, "ticks", sim.DefaultMaxTicks, "Tick limit per run")
	simCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel runs (0 = number of CPUs)")
	simCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print every run")
}

func runSim(cmd *cobra.Command, args []string) {
	gameID, err := resolveGameID(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mode := skyjump.ModeStory
	if gameID == "skyjump_endless" {
		mode = skyjump.ModeEndless
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := sim.Run(ctx, cfg, sim.Options{
		Runs:     flagRuns,
		MaxTicks: flagTicks,
		Seed:     flagSeed,
		Mode:     mode,
		Workers:  flagWorkers,
		Logger:   stderrLogger(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		os.Exit(1)
	}

	if flagVerbose {
		fmt.Printf("  %-8s  %-7s  %-6s  %-4s  %-9s  %s\n", "Seed", "Climb", "Stones", "Leg", "Outcome", "Ticks")
		for _, r := range report.Results {
			leg := "-"
			if r.HasLeg {
				leg = "yes"
			}
			fmt.Printf("  %-8d  %-7d  %-6s  %-4s  %-9s  %d\n",
				r.Seed, int(r.Distance), fmt.Sprintf("%d/5", r.Stones), leg, outcome(r), r.Ticks)
		}
		fmt.Println()
	}

	fmt.Printf("Mode:          %s\n", report.Mode)
	fmt.Printf("Runs:          %d\n", len(report.Results))
	fmt.Printf("Win rate:      %.1f%%\n", report.WinRate*100)
	fmt.Printf("Leg rate:      %.1f%%\n", report.LegRate*100)
	fmt.Printf("Mean climb:    %.0f\n", report.MeanDistance)
	fmt.Printf("Mean stones:   %.2f\n", report.MeanStones)
	fmt.Printf("Best climb:    %.0f\n", report.BestDistance)
}

func outcome(r sim.RunResult) string {
	switch {
	case r.Won:
		return "patched"
	case r.GameOver:
		return "fallen"
	case r.TimedOut:
		return "timeout"
	default:
		return "-"
	}
}
