// Package session hosts NetWalk games for connected players. Each
// connection owns one Session, and a Session owns at most one game at a
// time. All methods are safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/netwalk/internal/games/netwalk/core"
)

var (
	// ErrNoGame is returned when a move arrives before any game was started.
	ErrNoGame = errors.New("session: no game in progress")

	// ErrUnknownSession is returned for IDs the registry does not hold.
	ErrUnknownSession = errors.New("session: unknown session")

	// ErrFull is returned when the registry already holds its limit.
	ErrFull = errors.New("session: too many sessions")
)

// NewGameRequest asks for a fresh board. An empty Seed means a random one.
type NewGameRequest struct {
	Size core.Size `json:"size" yaml:"size"`
	Seed string    `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// NewGameResult describes the scrambled board handed to the player.
type NewGameResult struct {
	Root  core.Pos  `json:"root" yaml:"root"`
	Seed  string    `json:"seed" yaml:"seed"`
	Tiles []int     `json:"tiles" yaml:"tiles"`
	Size  core.Size `json:"size" yaml:"size"`
}

// RotateRequest turns the tile at Pos one quarter turn.
type RotateRequest struct {
	Pos       core.Pos      `json:"pos" yaml:"pos"`
	Direction core.Rotation `json:"direction" yaml:"direction"`
}

// UpdateGameState reports the effect of a rotation.
type UpdateGameState struct {
	Pos      core.Pos  `json:"pos" yaml:"pos"`
	Flag     core.Mask `json:"flag" yaml:"flag"`
	IsSolved bool      `json:"is_solved" yaml:"is_solved"`
	Time     int64     `json:"time" yaml:"time"` // milliseconds since the game started
}

// Snapshot is a read-only view of the current game.
type Snapshot struct {
	Size    core.Size
	Seed    string
	Moves   int
	Elapsed time.Duration
	Solved  bool
}

// Session is one player's connection state.
type Session struct {
	id      ID
	created time.Time

	mu     sync.Mutex
	user   string
	game   *core.Game
	solved bool
}

// New creates an empty session.
func New(id ID) *Session {
	return &Session{
		id:      id,
		created: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// Created returns when the session was opened.
func (s *Session) Created() time.Time {
	return s.created
}

// Login records the player's name.
func (s *Session) Login(user string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// User returns the name given to Login.
func (s *Session) User() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// NewGame replaces the current game with a freshly generated, scrambled
// board and starts its timer.
func (s *Session) NewGame(req NewGameRequest) (NewGameResult, error) {
	var (
		seed core.Seed
		err  error
	)
	if req.Seed == "" {
		seed, err = core.NewSeed()
	} else {
		seed, err = core.ParseSeed(req.Seed)
	}
	if err != nil {
		return NewGameResult{}, fmt.Errorf("session: new game: %w", err)
	}

	g, err := core.NewGame(req.Size.Width, req.Size.Height, seed)
	if err != nil {
		return NewGameResult{}, fmt.Errorf("session: new game: %w", err)
	}
	g.Board().StartTimer()

	s.mu.Lock()
	s.game = g
	s.solved = false
	s.mu.Unlock()

	return ResultFor(g.Board(), seed), nil
}

// ResultFor describes b as a NewGameResult generated from seed.
func ResultFor(b *core.Board, seed core.Seed) NewGameResult {
	masks := b.Directions()
	tiles := make([]int, len(masks))
	for i, m := range masks {
		tiles[i] = int(m)
	}

	return NewGameResult{
		Root:  b.Root(),
		Seed:  seed.String(),
		Tiles: tiles,
		Size:  b.Size(),
	}
}

// RotateTile applies a rotation to the current game. It returns a nil state
// when the rotation changed nothing (off the board or a symmetric piece).
func (s *Session) RotateTile(req RotateRequest) (*UpdateGameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		return nil, ErrNoGame
	}

	flag := s.game.Rotate(req.Pos, req.Direction)
	if flag == 0 {
		return nil, nil
	}

	s.solved = s.game.IsSolved()
	return &UpdateGameState{
		Pos:      req.Pos,
		Flag:     flag,
		IsSolved: s.solved,
		Time:     s.game.Board().Elapsed().Milliseconds(),
	}, nil
}

// Snapshot returns the state of the current game.
func (s *Session) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		return Snapshot{}, ErrNoGame
	}
	return Snapshot{
		Size:    s.game.Board().Size(),
		Seed:    s.game.Seed().String(),
		Moves:   s.game.Moves(),
		Elapsed: s.game.Board().Elapsed(),
		Solved:  s.solved,
	}, nil
}

// View calls fn with the current game's board while holding the session
// lock. fn must not retain the board.
func (s *Session) View(fn func(b *core.Board)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game == nil {
		return ErrNoGame
	}
	fn(s.game.Board())
	return nil
}

// EndGame drops the current game.
func (s *Session) EndGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = nil
	s.solved = false
}
