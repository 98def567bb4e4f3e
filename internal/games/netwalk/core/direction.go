package core

import "fmt"

// Rotation is the direction of a quarter turn.
type Rotation int

const (
	RotateRight Rotation = iota // clockwise
	RotateLeft                  // counter-clockwise
)

// String returns the rotation name.
func (r Rotation) String() string {
	switch r {
	case RotateRight:
		return "Right"
	case RotateLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the rotation by name.
func (r Rotation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText accepts "Right" or "Left".
func (r *Rotation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Right", "right":
		*r = RotateRight
	case "Left", "left":
		*r = RotateLeft
	default:
		return fmt.Errorf("core: unknown rotation %q", text)
	}
	return nil
}

// Direction describes one of the four grid directions.
type Direction struct {
	Name     string
	Flag     Mask // bit for this direction
	Opposite Mask // bit after a half turn
	Right    Mask // bit after a clockwise quarter turn
	Left     Mask // bit after a counter-clockwise quarter turn
	Offset   Pos  // unit step in grid coordinates (Y grows downward)
}

// Directions is the lookup table used for adjacency, opposite matching and
// rotation. Order matters: random direction picks index into the set bits
// in this order.
var Directions = [4]Direction{
	{Name: "UP", Flag: Up, Opposite: Down, Right: Right, Left: Left, Offset: Pos{X: 0, Y: -1}},
	{Name: "RIGHT", Flag: Right, Opposite: Left, Right: Down, Left: Up, Offset: Pos{X: 1, Y: 0}},
	{Name: "DOWN", Flag: Down, Opposite: Up, Right: Left, Left: Right, Offset: Pos{X: 0, Y: 1}},
	{Name: "LEFT", Flag: Left, Opposite: Right, Right: Up, Left: Down, Offset: Pos{X: -1, Y: 0}},
}
