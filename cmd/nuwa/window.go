package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nuwa-jump/internal/games/skyjump"
	"github.com/vovakirdan/nuwa-jump/internal/platform/gfx"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a 480x640 window and climb with sprites.

Sprites are read from the assets directory (nuwa.png, platform.png,
bg.png, meteor.png, ao_leg.png, stone_0.png..stone_4.png). Any missing
file is drawn as a colored rectangle instead.

Controls:
  Left/Right, A/D  - Move
  Space/Enter      - Start or retry
  P/Esc            - Pause
  F3               - Toggle FPS
  Q                - Quit

Examples:
  nuwa window
  nuwa window endless --assets ./assets`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory with sprite images")
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID, err := resolveGameID(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := stderrLogger()
	setupGames(logger)

	game := skyjump.New()
	if gameID == "skyjump_endless" {
		game = skyjump.NewEndless()
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	watcher := startWatcher(logger)
	if watcher != nil {
		defer watcher.Close()
	}

	err = gfx.Run(game, gfx.Options{
		Store:     store,
		Logger:    logger,
		Watcher:   watcher,
		AssetsDir: flagAssets,
		TPS:       flagFPS,
		Seed:      flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
