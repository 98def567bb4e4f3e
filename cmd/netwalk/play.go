package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/netwalk/internal/config"
	"github.com/vovakirdan/netwalk/internal/games/netwalk/core"
	"github.com/vovakirdan/netwalk/internal/platform/tui"
	"github.com/vovakirdan/netwalk/internal/registry"
)

var (
	flagSize       string
	flagDifficulty string
	flagSeed       string
	flagFree       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play NetWalk",
	Long: `Start playing NetWalk.

Without flags the campaign selector opens. --free plays a single board;
--size or --difficulty pick its size and imply --free. --seed replays a
specific board (64 lowercase hex characters, as shown in the HUD).

Controls:
  Arrows/WASD     - Move the cursor
  X/Space/Enter   - Rotate tile clockwise
  Z               - Rotate tile counter-clockwise
  N               - New board of the same size
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  netwalk play
  netwalk play --free
  netwalk play --difficulty hard
  netwalk play --size 12x8
  netwalk play --size 5x5 --seed 00000000...`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSize, "size", "", "Board size WxH (free play)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Size preset: easy, normal, hard, expert")
	playCmd.Flags().StringVar(&flagSeed, "seed", "", "Board seed in hex (random when empty)")
	playCmd.Flags().BoolVar(&flagFree, "free", false, "Play a single board instead of the campaign")
	playCmd.MarkFlagsMutuallyExclusive("size", "difficulty")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg := appConfig
	free := flagFree || flagSize != "" || flagDifficulty != ""

	if flagDifficulty != "" {
		if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
			return err
		}
	}
	if flagSize != "" {
		size, err := core.ParseSize(flagSize)
		if err != nil {
			return err
		}
		cfg.Board.Width = size.Width
		cfg.Board.Height = size.Height
	}
	if err := cfg.CheckSize(config.BoardSize{Width: cfg.Board.Width, Height: cfg.Board.Height}); err != nil {
		return fmt.Errorf("invalid board size: %w", err)
	}
	if flagSeed != "" {
		if _, err := core.ParseSeed(flagSeed); err != nil {
			return err
		}
	}

	gameID := "netwalk"
	if free {
		gameID = tui.FreePlayID
	}

	rc := runtimeConfig(cfg)
	rc.Seed = flagSeed

	// Pick a level (or a size with a bare --free) unless the board is
	// already fully specified.
	if flagSeed == "" && flagSize == "" && flagDifficulty == "" {
		sel, quit, err := tui.RunNetwalkMenu(gameID, sizeOptions(cfg), rc)
		if err != nil {
			return err
		}
		if quit || sel == nil {
			return nil
		}
		rc = sel.Apply(rc)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	logger.Debug("starting game", "game", gameID, "board", fmt.Sprintf("%dx%d", rc.BoardW, rc.BoardH))

	_, err = tui.Run(game, store, rc, tui.ModelOptions{
		Player: playerName(),
		Logger: tuiLogger(cfg),
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
