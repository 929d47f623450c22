package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nuwa-jump/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes registered.")
		return
	}

	fmt.Println("Modes:")
	fmt.Println()
	for _, g := range games {
		fmt.Printf("  %-18s %s\n", g.ID, g.Title)
	}
	fmt.Println()
	fmt.Println("Run 'nuwa play <mode>' to start (story and endless also work).")
}
