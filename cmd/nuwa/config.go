package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nuwa-jump/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning",
	Long: `Print the built-in tuning as YAML. Save it as
~/.nuwa/configs/nuwa.yaml or ./configs/nuwa.yaml to override it.

Examples:
  nuwa config > ~/.nuwa/configs/nuwa.yaml
  nuwa config path
  nuwa config check ./nuwa.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show which tuning file would be loaded",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := config.Locate(flagConfig)
		if path == "" {
			fmt.Println("(built-in defaults)")
			return
		}
		fmt.Println(path)
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a tuning file",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := flagConfig
		if len(args) > 0 {
			path = args[0]
		}
		path = config.Locate(path)
		if path == "" {
			fmt.Println("No tuning file found; built-in defaults are valid.")
			return
		}
		if _, err := config.LoadFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", path)
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configCheckCmd)
}
