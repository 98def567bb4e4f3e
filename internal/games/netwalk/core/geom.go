package core

import "fmt"

// Pos is a tile coordinate or offset. X grows right, Y grows down.
type Pos struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns the component-wise sum.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// String returns "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a board size in tiles.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Cells returns width*height.
func (s Size) Cells() int {
	return s.Width * s.Height
}

// String returns "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ParseSize parses "WxH" (for example "7x7").
func ParseSize(s string) (Size, error) {
	var sz Size
	if _, err := fmt.Sscanf(s, "%dx%d", &sz.Width, &sz.Height); err != nil {
		return Size{}, fmt.Errorf("core: invalid size %q: %w", s, ErrInvalidSize)
	}
	if err := sz.Validate(); err != nil {
		return Size{}, err
	}
	return sz, nil
}

// Validate checks that both dimensions are within [1, MaxDimension].
func (s Size) Validate() error {
	if s.Width < 1 || s.Height < 1 || s.Width > MaxDimension || s.Height > MaxDimension {
		return fmt.Errorf("core: size %s out of range 1..%d: %w", s, MaxDimension, ErrInvalidSize)
	}
	return nil
}
