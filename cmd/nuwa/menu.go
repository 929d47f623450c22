package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nuwa-jump/internal/platform/tui"
	"github.com/vovakirdan/nuwa-jump/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the terminal menu",
	Long: `Pick a mode or browse the run history from a menu.

Controls:
  Up/Down, W/S  - Navigate
  Enter/Space   - Select
  Q             - Quit

Examples:
  nuwa menu
  nuwa menu --seed 42`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	logger, closeLog := fileLogger()
	defer closeLog()
	setupGames(logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	watcher := startWatcher(logger)
	if watcher != nil {
		defer watcher.Close()
	}

	for {
		cfg := terminalConfig()
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
				os.Exit(1)
			}
			if !goBack {
				return
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		logger.Info("starting run", "mode", result.GameID, "seed", flagSeed)
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
}
