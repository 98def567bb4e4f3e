package netwalk

import "github.com/vovakirdan/netwalk/internal/games/netwalk/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign" or "free"
	Level   int    // Current level (1-indexed for display), 0 for free play
	Size    core.Size
	Seed    string
	Cursor  core.Pos
	Root    core.Pos
	Tiles   []core.Mask
	Powered int
	Moves   int
	Score   int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.levelIndex + 1
	}

	snap := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Level:  level,
		Size:   g.size,
		Seed:   g.boardSeed,
		Cursor: g.cursor,
		Moves:  g.moves,
		Score:  g.score,
		State:  state,
	}
	if g.sess != nil {
		//nolint:errcheck // no board leaves tiles empty
		g.sess.View(func(b *core.Board) {
			b.IsSolved()
			snap.Root = b.Root()
			snap.Tiles = b.Directions()
			snap.Powered = b.PoweredCount()
		})
	}
	return snap
}
