package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nuwa-jump/internal/platform/tui"
	"github.com/vovakirdan/nuwa-jump/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start a climb in the terminal.

Modes:
  story    - Gather the stones and the leg, then pass 3000 (default)
  endless  - No win; climb until you fall

Controls:
  Left/Right, A/D, H/L  - Move
  Space/Enter           - Start or retry
  P/Esc                 - Pause
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Examples:
  nuwa play
  nuwa play endless
  nuwa play --seed 42 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, err := resolveGameID(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()
	setupGames(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	watcher := startWatcher(logger)
	if watcher != nil {
		defer watcher.Close()
	}

	logger.Info("starting run", "mode", gameID, "seed", flagSeed)
	err = tui.Run(game, terminalConfig(), tui.Options{
		Store:   store,
		Logger:  logger,
		Watcher: watcher,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
