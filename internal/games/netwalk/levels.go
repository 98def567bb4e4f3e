package netwalk

import "github.com/vovakirdan/netwalk/internal/games/netwalk/core"

// Level is one campaign stage.
type Level struct {
	ID     int
	Name   string
	Width  int
	Height int
}

// Size returns the level's board size.
func (l Level) Size() core.Size {
	return core.Size{Width: l.Width, Height: l.Height}
}

// DefaultLevels is the built-in campaign, from a 3x3 warm-up to 13x13.
var DefaultLevels = []Level{
	{ID: 1, Name: "First Link", Width: 3, Height: 3},
	{ID: 2, Name: "Small Office", Width: 4, Height: 4},
	{ID: 3, Name: "Branch Line", Width: 5, Height: 5},
	{ID: 4, Name: "Corridor", Width: 7, Height: 5},
	{ID: 5, Name: "Floor Plan", Width: 7, Height: 7},
	{ID: 6, Name: "Server Room", Width: 8, Height: 8},
	{ID: 7, Name: "Campus", Width: 9, Height: 9},
	{ID: 8, Name: "Backbone", Width: 11, Height: 9},
	{ID: 9, Name: "Metro Ring", Width: 11, Height: 11},
	{ID: 10, Name: "Data Center", Width: 13, Height: 13},
}

var levels = DefaultLevels

// SetLevels replaces the campaign. An empty list restores the default.
func SetLevels(ls []Level) {
	if len(ls) == 0 {
		levels = DefaultLevels
		return
	}
	levels = ls
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(levels) {
		return nil
	}
	return &levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelSizes returns the board sizes of all levels.
func LevelSizes() []core.Size {
	sizes := make([]core.Size, len(levels))
	for i, lvl := range levels {
		sizes[i] = lvl.Size()
	}
	return sizes
}
