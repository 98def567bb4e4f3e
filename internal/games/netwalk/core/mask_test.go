package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskCount(t *testing.T) {
	tests := []struct {
		mask Mask
		want int
	}{
		{0, 0},
		{Up, 1},
		{Up | Down, 2},
		{Left | Up | Right, 3},
		{All, 4},
		{0xF0 | Right, 1}, // high bits ignored
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mask.Count(), "mask %04b", tt.mask)
	}
}

func TestMaskRotateSingleBits(t *testing.T) {
	assert.Equal(t, Right, Up.Rotate(RotateRight, 1))
	assert.Equal(t, Down, Right.Rotate(RotateRight, 1))
	assert.Equal(t, Left, Down.Rotate(RotateRight, 1))
	assert.Equal(t, Up, Left.Rotate(RotateRight, 1))

	assert.Equal(t, Left, Up.Rotate(RotateLeft, 1))
	assert.Equal(t, Down, Up.Rotate(RotateRight, 2))
}

func TestMaskRotateMultipleBits(t *testing.T) {
	// Every bit moves at once: an elbow stays an elbow.
	assert.Equal(t, Right|Down, (Up|Right).Rotate(RotateRight, 1))
	// A straight piece flips axis.
	assert.Equal(t, Left|Right, (Up|Down).Rotate(RotateRight, 1))
	assert.Equal(t, Up|Down, (Up|Down).Rotate(RotateLeft, 2))
	assert.Equal(t, All, All.Rotate(RotateLeft, 3))
}

func TestMaskRotateClosure(t *testing.T) {
	for m := Mask(0); m <= All; m++ {
		for _, rot := range []Rotation{RotateRight, RotateLeft} {
			assert.Equal(t, m, m.Rotate(rot, 4), "four %s turns of %s", rot, m)
		}
		assert.Equal(t, m, m.Rotate(RotateRight, 1).Rotate(RotateLeft, 1), "right then left of %s", m)
		assert.Equal(t, m.Count(), m.Rotate(RotateRight, 1).Count(), "rotation keeps stub count of %s", m)
	}
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "-", Mask(0).String())
	assert.Equal(t, "UD", (Up | Down).String())
	assert.Equal(t, "URDL", All.String())
}

func TestDirectionTableConsistency(t *testing.T) {
	byFlag := make(map[Mask]Direction, len(Directions))
	for _, d := range Directions {
		byFlag[d.Flag] = d
	}

	for _, d := range Directions {
		opp, ok := byFlag[d.Opposite]
		require.True(t, ok)
		assert.Equal(t, d.Flag, opp.Opposite, "%s opposite of opposite", d.Name)
		assert.Equal(t, Pos{}, d.Offset.Add(opp.Offset), "%s offsets cancel", d.Name)

		right, ok := byFlag[d.Right]
		require.True(t, ok)
		assert.Equal(t, d.Flag, right.Left, "%s right then left", d.Name)
	}
}

func TestRotationText(t *testing.T) {
	var r Rotation
	assert.NoError(t, r.UnmarshalText([]byte("Left")))
	assert.Equal(t, RotateLeft, r)

	text, err := RotateRight.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "Right", string(text))

	assert.Error(t, r.UnmarshalText([]byte("Up")))
}
