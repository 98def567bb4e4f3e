package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/netwalk/internal/platform/tui"
	"github.com/vovakirdan/netwalk/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start NetWalk with a mode picker menu",
	Long: `Start NetWalk in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. Pick the campaign
(from the start or any level) or free play with a preset size. When a
board is paused or finished, B/Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  netwalk menu
  netwalk menu --fps 30
  netwalk menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig(appConfig)
	sizes := sizeOptions(appConfig)
	opts := tui.ModelOptions{
		Player:    playerName(),
		Logger:    tuiLogger(appConfig),
		AllowBack: true,
	}

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return
		}

		sel, quit, err := tui.RunNetwalkMenu(gameID, sizes, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if quit {
			return
		}
		if sel == nil {
			continue
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Every game from the menu draws fresh boards.
		rc := sel.Apply(cfg)
		rc.Seed = ""

		back, err := tui.Run(game, store, rc, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			continue
		}
		if !back {
			return
		}
	}
}
