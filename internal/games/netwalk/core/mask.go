// Package core provides the puzzle engine for NetWalk.
// It generates spanning-tree pipe networks from a seed, rotates tiles and
// checks whether power reaches every terminal. The package is UI-agnostic
// and deterministic: every random draw comes from an explicit RNG.
package core

import "math/bits"

// Mask is a 4-bit set of pipe directions.
type Mask uint8

// Direction bits.
const (
	Up    Mask = 1
	Right Mask = 2
	Down  Mask = 4
	Left  Mask = 8

	// All has every direction bit set.
	All = Up | Right | Down | Left
)

// Count returns the number of set direction bits.
func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m & All))
}

// Has reports whether every bit of other is set in m.
func (m Mask) Has(other Mask) bool {
	return other != 0 && m&other == other
}

// Rotate returns the mask after n quarter turns in the given direction.
// Every set bit moves at once, so opposite bits rotate independently.
func (m Mask) Rotate(rot Rotation, n int) Mask {
	for range n {
		var next Mask
		for _, d := range Directions {
			if m&d.Flag == 0 {
				continue
			}
			if rot == RotateLeft {
				next |= d.Left
			} else {
				next |= d.Right
			}
		}
		m = next
	}
	return m
}

// String returns a compact representation such as "UR" or "-".
func (m Mask) String() string {
	if m&All == 0 {
		return "-"
	}
	buf := make([]byte, 0, 4)
	for _, d := range Directions {
		if m&d.Flag != 0 {
			buf = append(buf, d.Name[0])
		}
	}
	return string(buf)
}
