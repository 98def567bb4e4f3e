// Package netwalk provides the NetWalk pipe-rotation puzzle for the terminal.
// The board logic lives in the core subpackage; this package adds the
// cursor, campaign progression and scoring on top of a player session.
package netwalk

import (
	"time"

	platformcore "github.com/vovakirdan/netwalk/internal/core"
	"github.com/vovakirdan/netwalk/internal/games/netwalk/core"
	"github.com/vovakirdan/netwalk/internal/registry"
	"github.com/vovakirdan/netwalk/internal/session"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeFree     Mode = "free"
)

const (
	// DefaultWidth and DefaultHeight size free-play boards when the
	// runtime config leaves them unset.
	DefaultWidth  = 7
	DefaultHeight = 7

	levelClearTicks = 120 // 2 seconds at 60 FPS
	hudHeight       = 3
	tileWidth       = 3

	// Random boards that come out of the scramble already solved are
	// drawn again, up to this many times.
	maxRerolls = 8
)

// Game implements the NetWalk puzzle.
type Game struct {
	mode Mode
	sess *session.Session
	tick uint64

	// Screen dimensions
	screenW int
	screenH int

	// Board the player is working on
	size      core.Size
	boardSeed string
	cursor    core.Pos
	moves     int
	elapsed   time.Duration
	solved    bool

	score      int
	levelIndex int
	boardW     int
	boardH     int
	solves     []registry.SolveResult
	err        error

	// Game state flags
	gameOver     bool
	won          bool
	paused       bool
	tooSmall     bool
	levelCleared bool
	clearTicks   int
}

// New creates a new campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewFree creates a single-board game.
func NewFree() *Game {
	return &Game{mode: ModeFree}
}

func init() {
	registry.Register("netwalk", func() registry.Game {
		return New()
	})
	registry.Register("netwalk_free", func() registry.Game {
		return NewFree()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFree {
		return "netwalk_free"
	}
	return "netwalk"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFree {
		return "NetWalk (Free Play)"
	}
	return "NetWalk"
}

// Attach makes the game run its boards through s.
func (g *Game) Attach(s *session.Session) {
	g.sess = s
}

// Session returns the session the game plays through.
func (g *Game) Session() *session.Session {
	return g.sess
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if g.sess == nil {
		g.sess = session.New(session.NewID())
	}

	g.tick = 0
	g.score = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.boardW = cfg.BoardW
	g.boardH = cfg.BoardH
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.clearTicks = 0
	g.solves = nil
	g.err = nil

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && cfg.StartLevel > 0 && cfg.StartLevel <= LevelCount() {
		g.levelIndex = cfg.StartLevel - 1
	} else {
		g.levelIndex = 0
	}

	g.startBoard(cfg.Seed)
}

// Resize adapts the layout to a new terminal size without touching the
// board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// boardSize returns the size of the next board.
func (g *Game) boardSize() core.Size {
	if g.mode == ModeCampaign {
		if lvl := GetLevel(g.levelIndex); lvl != nil {
			return lvl.Size()
		}
	}
	size := core.Size{Width: g.boardW, Height: g.boardH}
	if size.Width <= 0 {
		size.Width = DefaultWidth
	}
	if size.Height <= 0 {
		size.Height = DefaultHeight
	}
	return size
}

// startBoard asks the session for a new board. An empty seed means random.
func (g *Game) startBoard(seed string) {
	req := session.NewGameRequest{Size: g.boardSize(), Seed: seed}

	var res session.NewGameResult
	for attempt := 0; ; attempt++ {
		var err error
		res, err = g.sess.NewGame(req)
		if err != nil {
			g.err = err
			g.gameOver = true
			return
		}
		if seed != "" || attempt >= maxRerolls || res.Size.Cells() == 1 {
			break
		}
		solved, err := g.boardSolved()
		if err != nil {
			g.err = err
			g.gameOver = true
			return
		}
		if !solved {
			break
		}
	}

	g.size = res.Size
	g.boardSeed = res.Seed
	g.cursor = res.Root
	g.moves = 0
	g.elapsed = 0
	g.solved = false
	g.checkScreenSize()
}

// boardSolved reports whether the session's current board is solved.
func (g *Game) boardSolved() (bool, error) {
	solved := false
	err := g.sess.View(func(b *core.Board) {
		solved = b.IsSolved()
	})
	return solved, err
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.size.Width*tileWidth + 2
	minH := g.size.Height + hudHeight + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	// Handle window size check
	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle level cleared banner
	if g.levelCleared {
		g.clearTicks++
		if g.clearTicks >= levelClearTicks {
			g.advanceLevel()
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Restart after game over is handled by the platform
	if g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	if snap, err := g.sess.Snapshot(); err == nil {
		g.elapsed = snap.Elapsed
	}

	if in.Has(platformcore.ActionNewBoard) {
		g.startBoard("")
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	switch {
	case in.Has(platformcore.ActionRotateRight), in.Has(platformcore.ActionConfirm):
		g.rotate(core.RotateRight)
	case in.Has(platformcore.ActionRotateLeft):
		g.rotate(core.RotateLeft)
	}

	return platformcore.StepResult{State: g.State()}
}

// moveCursor moves the cursor one tile, wrapping at the edges.
func (g *Game) moveCursor(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Y--
	case in.Has(platformcore.ActionDown):
		g.cursor.Y++
	case in.Has(platformcore.ActionLeft):
		g.cursor.X--
	case in.Has(platformcore.ActionRight):
		g.cursor.X++
	}
	g.cursor.X = platformcore.Wrap(g.cursor.X, g.size.Width)
	g.cursor.Y = platformcore.Wrap(g.cursor.Y, g.size.Height)
}

// rotate turns the tile under the cursor.
func (g *Game) rotate(rot core.Rotation) {
	state, err := g.sess.RotateTile(session.RotateRequest{Pos: g.cursor, Direction: rot})
	if err != nil {
		g.err = err
		return
	}
	if state == nil {
		return
	}

	g.moves++
	if state.IsSolved {
		g.onSolved(time.Duration(state.Time) * time.Millisecond)
	}
}

// onSolved scores the board and moves the game on.
func (g *Game) onSolved(elapsed time.Duration) {
	g.solved = true
	g.elapsed = elapsed
	g.score += Score(g.size.Cells(), g.moves, elapsed)
	g.solves = append(g.solves, registry.SolveResult{
		Width:   g.size.Width,
		Height:  g.size.Height,
		Seed:    g.boardSeed,
		Moves:   g.moves,
		Elapsed: elapsed,
	})

	if g.mode == ModeCampaign {
		g.levelCleared = true
		g.clearTicks = 0
		return
	}
	g.won = true
	g.gameOver = true
}

// advanceLevel moves to the next campaign level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.clearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		g.gameOver = true
		return
	}

	g.levelIndex++
	g.startBoard("")
}

// Score returns the points for one solved board. Every tile is worth 10,
// plus a bonus for finishing under 3 moves per tile and another for
// finishing under 10 seconds per tile.
func Score(cells, moves int, elapsed time.Duration) int {
	moveBonus := max(0, 3*cells-moves) * 5
	timeBonus := max(0, 10*cells-int(elapsed/time.Second))
	return cells*10 + moveBonus + timeBonus
}

// TakeSolves returns the boards solved since the last call.
func (g *Game) TakeSolves() []registry.SolveResult {
	out := g.solves
	g.solves = nil
	return out
}

// Err returns the last session error, if any.
func (g *Game) Err() error {
	return g.err
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
