package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/netwalk/internal/games/netwalk/core"
	"github.com/vovakirdan/netwalk/internal/registry"
	"github.com/vovakirdan/netwalk/internal/storage"
)

var (
	flagScoresSize   string
	flagScoresRecent int
	flagScoresClear  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and fastest solves",
	Long: `Display the top 10 scores of each game mode and the fastest solves.

Without --size the fastest solves are listed for every board size that
has been solved; with it, only for that size.

Examples:
  netwalk scores
  netwalk scores --size 7x7
  netwalk scores --recent 20
  netwalk scores --clear netwalk_free`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresSize, "size", "", "Only show solves of this board size (WxH)")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 0, "Show the latest N solves instead")
	scoresCmd.Flags().StringVar(&flagScoresClear, "clear", "", "Delete all scores of a game mode")
}

func runScores(_ *cobra.Command, _ []string) error {
	var only *core.Size
	if flagScoresSize != "" {
		size, err := core.ParseSize(flagScoresSize)
		if err != nil {
			return err
		}
		only = &size
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer closeStore(store)

	if flagScoresClear != "" {
		if !registry.Exists(flagScoresClear) {
			return fmt.Errorf("unknown game %q, run 'netwalk list' to see game modes", flagScoresClear)
		}
		if err := store.ClearScores(flagScoresClear); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", flagScoresClear)
		return nil
	}
	if flagScoresRecent > 0 {
		return printRecent(store, flagScoresRecent)
	}

	if only == nil {
		for _, g := range registry.List() {
			if err := printScores(store, g); err != nil {
				return err
			}
		}
	}

	var sizes [][2]int
	if only != nil {
		sizes = [][2]int{{only.Width, only.Height}}
	} else if sizes, err = store.SolvedSizes(); err != nil {
		return fmt.Errorf("retrieving solves: %w", err)
	}

	if len(sizes) == 0 {
		fmt.Println("No boards solved yet.")
		fmt.Println()
		fmt.Println("Play 'netwalk play' to record the first solve!")
		return nil
	}
	for _, wh := range sizes {
		if err := printSolves(store, wh[0], wh[1]); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, g registry.GameInfo) error {
	scores, err := store.TopScores(g.ID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-10d  %s\n", i+1, entry.Player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(g.ID); err == nil {
		fmt.Printf("  Best: %d", best)
	}
	if stats, err := store.GetGameStats(g.ID); err == nil {
		fmt.Printf("  Games: %d  Average: %.0f", stats.GamesCount, stats.AvgScore)
	}
	fmt.Println()
	fmt.Println()
	return nil
}

func printSolves(store *storage.Store, width, height int) error {
	solves, err := store.FastestSolves(width, height, 10)
	if err != nil {
		return fmt.Errorf("retrieving solves: %w", err)
	}

	fmt.Printf("Fastest Solves - %dx%d\n", width, height)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("  No solves recorded yet.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %s\n", "Rank", "Player", "Time", "Moves", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %s\n", "----", "------", "----", "-----", "----")
	for i, s := range solves {
		fmt.Printf("  %-4d  %-12s  %-8s  %-6d  %s\n",
			i+1, s.Player, s.Elapsed.Round(100*time.Millisecond), s.Moves, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}

func printRecent(store *storage.Store, limit int) error {
	solves, err := store.RecentSolves(limit)
	if err != nil {
		return fmt.Errorf("retrieving solves: %w", err)
	}

	fmt.Println("Recent Solves")
	fmt.Println()
	if len(solves) == 0 {
		fmt.Println("  No solves recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-7s  %-8s  %-6s  %s\n", "Player", "Size", "Time", "Moves", "Date")
	for _, s := range solves {
		fmt.Printf("  %-12s  %-7s  %-8s  %-6d  %s\n",
			s.Player, fmt.Sprintf("%dx%d", s.Width, s.Height), s.Elapsed.Round(100*time.Millisecond),
			s.Moves, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
