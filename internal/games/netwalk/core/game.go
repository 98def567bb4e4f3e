package core

// Game is one playthrough: a scrambled board and the random stream that
// produced it.
type Game struct {
	rng   *RNG
	board *Board
	moves int
}

// NewGame generates and scrambles a board from seed.
func NewGame(width, height int, seed Seed) (*Game, error) {
	rng := NewRNG(seed)
	board, err := NewBoard(width, height, rng)
	if err != nil {
		return nil, err
	}
	board.Scramble(rng)

	return &Game{
		rng:   rng,
		board: board,
	}, nil
}

// Rotate turns one tile and counts the move when it changed something.
func (g *Game) Rotate(pos Pos, rot Rotation) Mask {
	m := g.board.RotateTile(pos, rot)
	if m != 0 {
		g.moves++
	}
	return m
}

// IsSolved reports whether every terminal receives power.
func (g *Game) IsSolved() bool {
	return g.board.IsSolved()
}

// Board returns the game board.
func (g *Game) Board() *Board {
	return g.board
}

// RNG returns the game's random stream.
func (g *Game) RNG() *RNG {
	return g.rng
}

// Seed returns the seed the game was generated from.
func (g *Game) Seed() Seed {
	return g.rng.Seed()
}

// Moves returns the number of rotations that changed a tile.
func (g *Game) Moves() int {
	return g.moves
}
