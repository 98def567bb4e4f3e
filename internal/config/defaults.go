package config

import (
	_ "embed"
)

//go:embed defaults/netwalk.yaml
var defaultNetwalkYAML []byte

// DefaultNetwalkConfig returns the built-in configuration.
func DefaultNetwalkConfig() NetwalkConfig {
	return NetwalkConfig{
		Board: BoardConfig{
			Width:    7,
			Height:   7,
			Scramble: true,
		},
		Presets: map[string]BoardSize{
			string(DifficultyEasy):   {Width: 5, Height: 5},
			string(DifficultyNormal): {Width: 7, Height: 7},
			string(DifficultyHard):   {Width: 9, Height: 9},
			string(DifficultyExpert): {Width: 13, Height: 13},
		},
		Campaign: []CampaignLevel{
			{Name: "First Link", Width: 3, Height: 3},
			{Name: "Small Office", Width: 4, Height: 4},
			{Name: "Branch Line", Width: 5, Height: 5},
			{Name: "Corridor", Width: 7, Height: 5},
			{Name: "Floor Plan", Width: 7, Height: 7},
			{Name: "Server Room", Width: 8, Height: 8},
			{Name: "Campus", Width: 9, Height: 9},
			{Name: "Backbone", Width: 11, Height: 9},
			{Name: "Metro Ring", Width: 11, Height: 11},
			{Name: "Data Center", Width: 13, Height: 13},
		},
		Limits: LimitsConfig{
			MaxWidth:  32,
			MaxHeight: 32,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Server: ServerConfig{
			Address:            ":2222",
			HostKey:            ".ssh/netwalk_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}
