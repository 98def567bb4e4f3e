package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/netwalk/internal/games/netwalk"
	"github.com/vovakirdan/netwalk/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes, size presets and campaign levels",
	Long:  `Shows the registered game modes, the configured difficulty presets and the campaign.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Difficulty presets:")
	fmt.Println()
	for _, name := range appConfig.PresetNames() {
		size := appConfig.Presets[name]
		fmt.Printf("  %-8s  %dx%d\n", name, size.Width, size.Height)
	}

	fmt.Println()
	fmt.Println("Campaign:")
	fmt.Println()
	sizes := netwalk.LevelSizes()
	for i, name := range netwalk.LevelNames() {
		fmt.Printf("  %2d. %-14s  %s\n", i+1, name, sizes[i])
	}

	fmt.Println()
	fmt.Println("Run 'netwalk play' for the campaign or 'netwalk play --difficulty <preset>' for a single board.")
}
