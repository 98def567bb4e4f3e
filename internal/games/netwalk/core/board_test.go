package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, w, h int, seed Seed) *Board {
	t.Helper()
	b, err := NewBoard(w, h, NewRNG(seed))
	require.NoError(t, err)
	return b
}

func TestGeneratedBoardIsSpanningTree(t *testing.T) {
	sizes := []Size{
		{1, 1}, {1, 2}, {2, 1}, {1, 9}, {9, 1},
		{2, 2}, {3, 3}, {4, 7}, {7, 4}, {10, 10}, {17, 5},
	}

	for _, sz := range sizes {
		for i := range 25 {
			b := newTestBoard(t, sz.Width, sz.Height, testSeed(i))

			require.Equal(t, sz.Cells()-1, b.Edges(), "size %s seed %d", sz, i)
			require.True(t, b.IsSolved(), "size %s seed %d", sz, i)
			require.Equal(t, sz.Cells(), b.PoweredCount(), "flood fill should reach every tile (size %s seed %d)", sz, i)

			for idx, n := range b.Neighbours() {
				require.Zero(t, n, "frontier left at index %d (size %s seed %d)", idx, sz, i)
			}
		}
	}
}

func TestLargeBoardIsSpanningTree(t *testing.T) {
	b := newTestBoard(t, MaxDimension, MaxDimension, testSeed(99))
	assert.Equal(t, MaxDimension*MaxDimension-1, b.Edges())
	assert.True(t, b.IsSolved())
}

func TestGenerationNoDanglingStubs(t *testing.T) {
	// Every stub on a fresh board is matched by its neighbour and no
	// frontier is left open.
	for i := range 10 {
		b := newTestBoard(t, 6, 5, testSeed(i))
		for y := 0; y < 5; y++ {
			for x := 0; x < 6; x++ {
				tile, ok := b.Tile(P(x, y))
				require.True(t, ok)
				assert.Zero(t, tile.FreeDirections(), "frontier left at (%d,%d)", x, y)
				for _, d := range Directions {
					if tile.Connections&d.Flag == 0 {
						continue
					}
					n, ok := b.Tile(P(x, y).Add(d.Offset))
					require.True(t, ok, "stub points off board at (%d,%d) %s", x, y, d.Name)
					assert.NotZero(t, n.Connections&d.Opposite)
				}
			}
		}
	}
}

func TestGenerationDeterministic(t *testing.T) {
	for i := range 10 {
		a := newTestBoard(t, 8, 6, testSeed(i))
		b := newTestBoard(t, 8, 6, testSeed(i))
		assert.Equal(t, a.Root(), b.Root())
		assert.Equal(t, a.Directions(), b.Directions())
		assert.Equal(t, a.Kinds(), b.Kinds())
	}

	a := newTestBoard(t, 8, 6, testSeed(1))
	b := newTestBoard(t, 8, 6, testSeed(2))
	assert.NotEqual(t, a.Directions(), b.Directions())
}

func TestTileKinds(t *testing.T) {
	for i := range 20 {
		b := newTestBoard(t, 5, 5, testSeed(i))

		servers := 0
		for idx, kind := range b.Kinds() {
			pos := P(idx%5, idx/5)
			tile, _ := b.Tile(pos)

			switch {
			case pos == b.Root():
				assert.Equal(t, KindServer, kind)
				servers++
			case tile.ConnectionCount() == 1:
				assert.Equal(t, KindTerminal, kind, "tile %s", pos)
			default:
				assert.Equal(t, KindConnector, kind, "tile %s", pos)
			}
		}
		assert.Equal(t, 1, servers)
		assert.Positive(t, b.Terminals())
	}
}

func TestSingleCellBoard(t *testing.T) {
	b := newTestBoard(t, 1, 1, Seed{})

	assert.Equal(t, P(0, 0), b.Root())
	tile, ok := b.Tile(P(0, 0))
	require.True(t, ok)
	assert.Equal(t, KindServer, tile.Kind)
	assert.Zero(t, tile.Connections)
	assert.Zero(t, b.Terminals())
	assert.True(t, b.IsSolved())
	assert.Zero(t, b.RotateTile(P(0, 0), RotateRight))
}

func TestNewBoardInvalidSize(t *testing.T) {
	for _, sz := range []Size{{0, 3}, {3, 0}, {-1, 2}, {MaxDimension + 1, 2}} {
		_, err := NewBoard(sz.Width, sz.Height, NewRNG(Seed{}))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSize))
	}
}

func TestRotateTileOutOfBounds(t *testing.T) {
	b := newTestBoard(t, 4, 4, testSeed(5))
	before := b.Directions()

	for _, p := range []Pos{P(-1, 0), P(0, -1), P(4, 0), P(0, 4), P(100, 100)} {
		assert.Zero(t, b.RotateTile(p, RotateRight), "pos %s", p)
		assert.Zero(t, b.RotateTile(p, RotateLeft), "pos %s", p)
	}
	assert.Equal(t, before, b.Directions())
}

func TestRotateTileReturnsNewMask(t *testing.T) {
	b, err := BoardFromMasks(Size{2, 1}, P(0, 0), []Mask{Right, Up | Right})
	require.NoError(t, err)

	assert.Equal(t, Down, b.RotateTile(P(0, 0), RotateRight))
	assert.Equal(t, Up|Left, b.RotateTile(P(1, 0), RotateLeft))
	assert.Equal(t, []Mask{Down, Up | Left}, b.Directions())
}

func TestRotateTileSymmetricIsNoop(t *testing.T) {
	b, err := BoardFromMasks(Size{2, 1}, P(0, 0), []Mask{All, Left | Right})
	require.NoError(t, err)

	// A cross never changes.
	assert.Zero(t, b.RotateTile(P(0, 0), RotateRight))
	// A straight changes axis, so a single turn is visible.
	assert.Equal(t, Up|Down, b.RotateTile(P(1, 0), RotateRight))
	assert.Equal(t, []Mask{All, Up | Down}, b.Directions())
}

func TestMutualConnectionRequired(t *testing.T) {
	// A points right at B, but B has no stub facing back.
	b, err := BoardFromMasks(Size{2, 1}, P(0, 0), []Mask{Right, Up})
	require.NoError(t, err)

	assert.False(t, b.IsSolved())
	tile, _ := b.Tile(P(1, 0))
	assert.False(t, tile.Powered)
	assert.Equal(t, KindTerminal, tile.Kind)
	assert.Equal(t, 1, b.PoweredCount())

	// Turning B to face A closes the circuit.
	assert.Equal(t, Left, b.RotateTile(P(1, 0), RotateLeft))
	assert.True(t, b.IsSolved())
	tile, _ = b.Tile(P(1, 0))
	assert.True(t, tile.Powered)
}

func TestUnpoweredConnectorDoesNotBlock(t *testing.T) {
	// Server at (0,0) feeds terminal (1,0); connector (0,1) is detached
	// and has no terminals behind it.
	b, err := BoardFromMasks(Size{2, 2}, P(0, 0), []Mask{Right, Left, Right | Up, 0})
	require.NoError(t, err)

	assert.True(t, b.IsSolved())
	tile, _ := b.Tile(P(0, 1))
	assert.Equal(t, KindConnector, tile.Kind)
	assert.False(t, tile.Powered)
}

func TestKindsFixedAfterRotation(t *testing.T) {
	b := newTestBoard(t, 5, 5, testSeed(11))
	kinds := b.Kinds()

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b.RotateTile(P(x, y), RotateRight)
		}
	}
	b.IsSolved()
	assert.Equal(t, kinds, b.Kinds())
}

func TestScramblePreservesStubCounts(t *testing.T) {
	for i := range 10 {
		rng := NewRNG(testSeed(i))
		b, err := NewBoard(7, 7, rng)
		require.NoError(t, err)
		before := b.Directions()

		b.Scramble(rng)
		after := b.Directions()

		for idx := range before {
			assert.Equal(t, before[idx].Count(), after[idx].Count(), "tile %d", idx)
			// Scramble turns clockwise 0-2 times, so one of those matches.
			m := before[idx]
			assert.Contains(t, []Mask{m, m.Rotate(RotateRight, 1), m.Rotate(RotateRight, 2)}, after[idx])
		}
	}
}

func TestBoardFromMasksValidation(t *testing.T) {
	_, err := BoardFromMasks(Size{2, 2}, P(0, 0), []Mask{0, 0, 0})
	assert.Error(t, err)

	_, err = BoardFromMasks(Size{2, 2}, P(2, 0), []Mask{0, 0, 0, 0})
	assert.Error(t, err)

	_, err = BoardFromMasks(Size{0, 2}, P(0, 0), nil)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestTimer(t *testing.T) {
	b := newTestBoard(t, 2, 2, Seed{})
	b.StartTimer()
	assert.GreaterOrEqual(t, b.Elapsed(), time.Duration(0))
	assert.Less(t, b.Elapsed(), time.Minute)
}

func TestParseSize(t *testing.T) {
	sz, err := ParseSize("7x5")
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 7, Height: 5}, sz)
	assert.Equal(t, "7x5", sz.String())

	for _, bad := range []string{"", "7", "x5", "0x5", "7x100"} {
		_, err := ParseSize(bad)
		assert.True(t, errors.Is(err, ErrInvalidSize), "input %q", bad)
	}
}
