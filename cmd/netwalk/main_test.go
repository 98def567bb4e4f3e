package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/netwalk/internal/config"
	"github.com/vovakirdan/netwalk/internal/games/netwalk/core"
	"github.com/vovakirdan/netwalk/internal/session"
)

var zeroSeed = strings.Repeat("0", 64)

func TestGenerateBoardSolved(t *testing.T) {
	b, seed, err := generateBoard(core.Size{Width: 4, Height: 3}, zeroSeed, true)
	require.NoError(t, err)
	assert.Equal(t, zeroSeed, seed.String())
	assert.True(t, b.IsSolved())
	assert.Equal(t, core.Size{Width: 4, Height: 3}, b.Size())
}

func TestGenerateBoardScrambledIsDeterministic(t *testing.T) {
	a, _, err := generateBoard(core.Size{Width: 6, Height: 6}, zeroSeed, false)
	require.NoError(t, err)
	b, _, err := generateBoard(core.Size{Width: 6, Height: 6}, zeroSeed, false)
	require.NoError(t, err)

	assert.Equal(t, a.Directions(), b.Directions())
	assert.Equal(t, a.Root(), b.Root())
}

func TestGenerateBoardErrors(t *testing.T) {
	_, _, err := generateBoard(core.Size{Width: 3, Height: 3}, "zz", false)
	assert.ErrorIs(t, err, core.ErrInvalidSeed)

	_, _, err = generateBoard(core.Size{Width: 0, Height: 3}, zeroSeed, true)
	assert.ErrorIs(t, err, core.ErrInvalidSize)
}

func TestWriteBoardFormats(t *testing.T) {
	b, seed, err := generateBoard(core.Size{Width: 3, Height: 3}, zeroSeed, true)
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, writeBoard(&text, b, seed, "text"))
	assert.Contains(t, text.String(), "seed: "+zeroSeed)
	assert.Contains(t, text.String(), "S")

	var js bytes.Buffer
	require.NoError(t, writeBoard(&js, b, seed, "json"))
	var fromJSON session.NewGameResult
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	assert.Equal(t, zeroSeed, fromJSON.Seed)
	assert.Len(t, fromJSON.Tiles, 9)
	assert.Equal(t, b.Root(), fromJSON.Root)

	var ym bytes.Buffer
	require.NoError(t, writeBoard(&ym, b, seed, "yaml"))
	var fromYAML session.NewGameResult
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)

	assert.Error(t, writeBoard(&bytes.Buffer{}, b, seed, "xml"))
}

func TestCampaignLevels(t *testing.T) {
	assert.Nil(t, campaignLevels(config.NetwalkConfig{}))

	levels := campaignLevels(config.NetwalkConfig{
		Campaign: []config.CampaignLevel{
			{Name: "Tiny", Width: 2, Height: 2},
			{Width: 4, Height: 3},
		},
	})
	require.Len(t, levels, 2)
	assert.Equal(t, "Tiny", levels[0].Name)
	assert.Equal(t, "Level 2", levels[1].Name)
	assert.Equal(t, 2, levels[1].ID)
	assert.Equal(t, core.Size{Width: 4, Height: 3}, levels[1].Size())
}

func TestSizeOptions(t *testing.T) {
	cfg := config.DefaultNetwalkConfig()
	opts := sizeOptions(cfg)

	require.Len(t, opts, len(cfg.Presets)+1)
	assert.Equal(t, "easy", opts[0].Name)
	last := opts[len(opts)-1]
	assert.Equal(t, cfg.Board.Width, last.Width)
	assert.Equal(t, cfg.Board.Height, last.Height)
}
