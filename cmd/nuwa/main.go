// nuwa is a vertical platform jumper: climb as Nuwa, gather the five
// colored stones and the leg of Ao, and patch the sky.
//
// Usage:
//
//	nuwa list              - List game modes
//	nuwa play [mode]       - Play in the terminal
//	nuwa window [mode]     - Play in a window
//	nuwa menu              - Terminal menu with modes and high scores
//	nuwa scores [mode]     - Show run history and records
//	nuwa sim               - Let a bot play headless runs
//	nuwa config            - Print the default tuning
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 60)
//	--seed <value>        - RNG seed for reproducible levels
//	--db <path>           - Run history database (default: ~/.nuwa/runs.db)
//	--config <path>       - Tuning YAML
//	--watch               - Reload the tuning file when it changes
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagWatch    bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nuwa",
	Short: "Nuwa: Patching the Sky - a vertical platform jumper",
	Long: `The heavens are shattered. Climb as Nuwa across endless platforms,
gather the Five Colored Stones and the Leg of the Great Turtle Ao,
and patch the sky before a meteor or a fall ends the ascent.

Available commands:
  list     - Show game modes
  play     - Play in the terminal
  window   - Play in a window
  menu     - Terminal menu
  scores   - Run history and records
  sim      - Headless bot runs
  config   - Print or check tuning

Examples:
  nuwa play
  nuwa play endless --seed 42
  nuwa window --assets ./assets
  nuwa sim --runs 100 --config ./nuwa.yaml
  nuwa play --config ./nuwa.yaml --watch`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nuwa/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to tuning YAML (default: search ~/.nuwa/configs, ./configs)")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.nuwa/nuwa.log", "Log file for terminal play")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
