package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nuwa-jump/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show run history and records",
	Long: `Without a mode, summarize every mode that has runs.
With a mode, list its longest climbs.

Examples:
  nuwa scores
  nuwa scores story --limit 20
  nuwa scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the mode (all modes without one)")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		id, err := resolveGameID(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		gameID = id
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		n, err := store.ClearRuns(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d runs.\n", n)
	case gameID == "":
		printSummary(store)
	default:
		printTopRuns(store, gameID)
	}
}

func printSummary(store *storage.Store) {
	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'nuwa play' to start climbing!")
		return
	}

	fmt.Printf("  %-16s  %-5s  %-5s  %-7s  %-7s  %s\n", "Mode", "Runs", "Wins", "Best", "Avg", "Last played")
	fmt.Printf("  %-16s  %-5s  %-5s  %-7s  %-7s  %s\n", "----", "----", "----", "----", "---", "-----------")
	for _, st := range all {
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-16s  %-5d  %-5d  %-7d  %-7d  %s\n",
			st.Mode, st.Runs, st.Wins, int(st.Best), int(st.AvgDistance), last)
	}
}

func printTopRuns(store *storage.Store, gameID string) {
	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Longest climbs - %s\n", gameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'nuwa play %s' to set the first record!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-4s  %-8s  %s\n", "Rank", "Climb", "Stones", "Leg", "Result", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-4s  %-8s  %s\n", "----", "-----", "------", "---", "------", "----")
	for i, r := range runs {
		leg := "-"
		if r.HasLeg {
			leg = "yes"
		}
		result := "fallen"
		if r.Won {
			result = "patched"
		}
		fmt.Printf("  %-4d  %-7d  %-6s  %-4s  %-8s  %s\n",
			i+1, int(r.Distance), fmt.Sprintf("%d/5", r.Stones), leg, result,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Wins: %d\n", int(st.Best), st.Runs, st.Wins)
	}
}
