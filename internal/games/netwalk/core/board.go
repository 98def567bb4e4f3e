package core

import (
	"fmt"
	"time"
)

// MaxDimension bounds board width and height.
const MaxDimension = 64

// Board is a NetWalk grid. Tiles are stored row-major: index = x + y*width.
type Board struct {
	size    Size
	tiles   []Tile
	root    Pos
	visit   []Pos // generation worklist
	start   time.Time
	stack   []Pos // solver scratch space
	powered int
}

// NewBoard generates a solved board (a spanning tree rooted at a random
// cell) using draws from rng. The result is not scrambled.
func NewBoard(width, height int, rng *RNG) (*Board, error) {
	size := Size{Width: width, Height: height}
	if err := size.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		size:  size,
		tiles: make([]Tile, size.Cells()),
		start: time.Now(),
	}
	b.root = Pos{X: rng.IntN(width), Y: rng.IntN(height)}

	b.initTiles()
	b.generateTree(rng)
	b.assignKinds()

	return b, nil
}

// BoardFromMasks builds a board with the given connection masks (row-major).
// Kinds follow the generation rule: one connection is a terminal, anything
// else a connector, and root is the server.
func BoardFromMasks(size Size, root Pos, masks []Mask) (*Board, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	if len(masks) != size.Cells() {
		return nil, fmt.Errorf("core: got %d masks for a %s board", len(masks), size)
	}

	b := &Board{
		size:  size,
		tiles: make([]Tile, size.Cells()),
		root:  root,
		start: time.Now(),
	}
	if !b.InBounds(root) {
		return nil, fmt.Errorf("core: root %s outside %s board", root, size)
	}
	b.initTiles()
	for i, m := range masks {
		b.tiles[i].Connections = m & All
	}
	b.assignKinds()

	return b, nil
}

// initTiles sets every frontier to the directions that stay on the grid.
func (b *Board) initTiles() {
	for y := 0; y < b.size.Height; y++ {
		for x := 0; x < b.size.Width; x++ {
			pos := Pos{X: x, Y: y}
			var frontier Mask
			for _, d := range Directions {
				if b.InBounds(pos.Add(d.Offset)) {
					frontier |= d.Flag
				}
			}
			b.tiles[b.index(pos)] = Tile{Frontier: frontier}
		}
	}
}

// generateTree grows a random spanning tree from the root. Cells are drawn
// from anywhere in the worklist rather than the newest entry, which keeps
// the tree bushy instead of producing long corridors.
func (b *Board) generateTree(rng *RNG) {
	b.visit = b.visit[:0]
	b.visitTile(b.root, 0)

	for len(b.visit) > 0 {
		n := rng.IntN(len(b.visit))
		pos := b.visit[n]

		if d, ok := b.randomFrontier(pos, rng); ok {
			b.visitTile(pos, d.Flag)
			b.visitTile(pos.Add(d.Offset), d.Opposite)
		}

		if b.tiles[b.index(pos)].FreeDirections() == 0 {
			b.visit = append(b.visit[:n], b.visit[n+1:]...)
		}
	}
}

// visitTile links pos through the incoming bit and closes every edge that
// would lead back into it, so no cycle can form.
func (b *Board) visitTile(pos Pos, incoming Mask) {
	t := &b.tiles[b.index(pos)]
	if t.Connections == 0 {
		b.visit = append(b.visit, pos)
	}
	t.Connections |= incoming

	for _, d := range Directions {
		np := pos.Add(d.Offset)
		if b.InBounds(np) {
			b.tiles[b.index(np)].Frontier &^= d.Opposite
		}
	}
}

// randomFrontier picks one of the remaining frontier directions of pos.
func (b *Board) randomFrontier(pos Pos, rng *RNG) (Direction, bool) {
	t := b.tiles[b.index(pos)]
	frontier := t.Frontier
	n := t.FreeDirections()
	if n == 0 {
		return Direction{}, false
	}

	pick := rng.IntN(n)
	for _, d := range Directions {
		if frontier&d.Flag == 0 {
			continue
		}
		if pick == 0 {
			return d, true
		}
		pick--
	}
	return Direction{}, false
}

// assignKinds classifies tiles by their generated connection count. Kinds
// are fixed from here on; rotation never changes them.
func (b *Board) assignKinds() {
	for i := range b.tiles {
		if b.tiles[i].ConnectionCount() == 1 {
			b.tiles[i].Kind = KindTerminal
		} else {
			b.tiles[i].Kind = KindConnector
		}
	}
	b.tiles[b.index(b.root)].Kind = KindServer
}

// Scramble rotates every tile clockwise by 0, 1 or 2 quarter turns.
func (b *Board) Scramble(rng *RNG) {
	for i := range b.tiles {
		b.tiles[i].Rotate(RotateRight, rng.IntN(3))
	}
}

// RotateTile turns the tile at pos one quarter turn and returns its new
// mask. It returns 0 when pos is off the board or when the turn leaves the
// mask unchanged (a straight or cross piece rotated onto itself), meaning
// nothing visible happened.
func (b *Board) RotateTile(pos Pos, rot Rotation) Mask {
	if !b.InBounds(pos) {
		return 0
	}

	t := &b.tiles[b.index(pos)]
	old := t.Connections
	t.Rotate(rot, 1)
	if t.Connections == old {
		return 0
	}
	return t.Connections
}

// StartTimer resets the elapsed-time origin.
func (b *Board) StartTimer() {
	b.start = time.Now()
}

// Elapsed returns the wall-clock time since StartTimer.
func (b *Board) Elapsed() time.Duration {
	return time.Since(b.start)
}

// Root returns the server position.
func (b *Board) Root() Pos {
	return b.root
}

// Size returns the board dimensions.
func (b *Board) Size() Size {
	return b.size
}

// Directions returns every tile's connection mask, row-major.
func (b *Board) Directions() []Mask {
	out := make([]Mask, len(b.tiles))
	for i, t := range b.tiles {
		out[i] = t.Connections
	}
	return out
}

// Neighbours returns every tile's frontier mask, row-major.
func (b *Board) Neighbours() []Mask {
	out := make([]Mask, len(b.tiles))
	for i, t := range b.tiles {
		out[i] = t.Frontier
	}
	return out
}

// Kinds returns every tile's kind, row-major.
func (b *Board) Kinds() []Kind {
	out := make([]Kind, len(b.tiles))
	for i, t := range b.tiles {
		out[i] = t.Kind
	}
	return out
}

// Tile returns a copy of the tile at pos.
func (b *Board) Tile(pos Pos) (Tile, bool) {
	if !b.InBounds(pos) {
		return Tile{}, false
	}
	return b.tiles[b.index(pos)], true
}

// InBounds reports whether pos is on the board.
func (b *Board) InBounds(pos Pos) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < b.size.Width && pos.Y < b.size.Height
}

// Edges counts undirected links where both tiles face each other.
func (b *Board) Edges() int {
	edges := 0
	for y := 0; y < b.size.Height; y++ {
		for x := 0; x < b.size.Width; x++ {
			t := b.tiles[b.index(Pos{X: x, Y: y})]
			// Count each edge once from its left or upper tile.
			if t.Connections&Right != 0 && x+1 < b.size.Width &&
				b.tiles[b.index(Pos{X: x + 1, Y: y})].Connections&Left != 0 {
				edges++
			}
			if t.Connections&Down != 0 && y+1 < b.size.Height &&
				b.tiles[b.index(Pos{X: x, Y: y + 1})].Connections&Up != 0 {
				edges++
			}
		}
	}
	return edges
}

// Terminals returns the number of terminal tiles.
func (b *Board) Terminals() int {
	n := 0
	for _, t := range b.tiles {
		if t.Kind == KindTerminal {
			n++
		}
	}
	return n
}

func (b *Board) index(p Pos) int {
	return p.X + p.Y*b.size.Width
}
