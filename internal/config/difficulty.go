package config

import (
	"fmt"
	"sort"
)

// DifficultyPreset represents a named board size.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// PresetSize returns the board size for a preset.
func (c NetwalkConfig) PresetSize(preset DifficultyPreset) (BoardSize, error) {
	size, ok := c.Presets[string(preset)]
	if !ok {
		return BoardSize{}, fmt.Errorf("config: unknown difficulty %q (have %v)", preset, c.PresetNames())
	}
	return size, nil
}

// PresetNames returns the configured preset names ordered by board area.
func (c NetwalkConfig) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := c.Presets[names[i]], c.Presets[names[j]]
		if a.Width*a.Height != b.Width*b.Height {
			return a.Width*a.Height < b.Width*b.Height
		}
		return names[i] < names[j]
	})
	return names
}

// ApplyPreset sets the free-play board to the preset's size.
func ApplyPreset(cfg *NetwalkConfig, preset DifficultyPreset) error {
	size, err := cfg.PresetSize(preset)
	if err != nil {
		return err
	}
	cfg.Board.Width = size.Width
	cfg.Board.Height = size.Height
	return nil
}
