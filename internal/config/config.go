// Package config provides YAML-based configuration loading and difficulty
// presets for NetWalk.
package config

import (
	"fmt"

	"github.com/vovakirdan/netwalk/internal/games/netwalk/core"
)

// NetwalkConfig contains all configuration for the game and its hosts.
type NetwalkConfig struct {
	Board    BoardConfig          `yaml:"board"`
	Presets  map[string]BoardSize `yaml:"presets"`
	Campaign []CampaignLevel      `yaml:"campaign"`
	Limits   LimitsConfig         `yaml:"limits"`
	Log      LogConfig            `yaml:"log"`
	Server   ServerConfig         `yaml:"server"`
}

// BoardSize is a board size in tiles.
type BoardSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Size converts to the engine's size type.
func (b BoardSize) Size() core.Size {
	return core.Size{Width: b.Width, Height: b.Height}
}

// BoardConfig defines the default free-play board.
type BoardConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	Scramble bool `yaml:"scramble"` // false prints solved boards from generate
}

// CampaignLevel is one stage of the campaign.
type CampaignLevel struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LimitsConfig bounds user-chosen board sizes.
type LimitsConfig struct {
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // empty logs to stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	MaxSessions        int    `yaml:"max_sessions"` // 0 means unlimited
}

// Validate checks that every configured size is playable.
func (c NetwalkConfig) Validate() error {
	if c.Limits.MaxWidth < 1 || c.Limits.MaxWidth > core.MaxDimension ||
		c.Limits.MaxHeight < 1 || c.Limits.MaxHeight > core.MaxDimension {
		return fmt.Errorf("config: limits %dx%d outside 1..%d", c.Limits.MaxWidth, c.Limits.MaxHeight, core.MaxDimension)
	}

	if err := c.CheckSize(BoardSize{Width: c.Board.Width, Height: c.Board.Height}); err != nil {
		return fmt.Errorf("config: board: %w", err)
	}
	for name, size := range c.Presets {
		if err := c.CheckSize(size); err != nil {
			return fmt.Errorf("config: preset %q: %w", name, err)
		}
	}
	for i, lvl := range c.Campaign {
		if err := c.CheckSize(BoardSize{Width: lvl.Width, Height: lvl.Height}); err != nil {
			return fmt.Errorf("config: campaign level %d: %w", i+1, err)
		}
	}
	return nil
}

// CheckSize reports whether a board size is within the configured limits.
func (c NetwalkConfig) CheckSize(size BoardSize) error {
	if err := size.Size().Validate(); err != nil {
		return err
	}
	if size.Width > c.Limits.MaxWidth || size.Height > c.Limits.MaxHeight {
		return fmt.Errorf("size %dx%d exceeds limit %dx%d: %w",
			size.Width, size.Height, c.Limits.MaxWidth, c.Limits.MaxHeight, core.ErrInvalidSize)
	}
	return nil
}
