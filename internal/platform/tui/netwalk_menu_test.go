package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/netwalk/internal/core"
	"github.com/vovakirdan/netwalk/internal/games/netwalk"
)

var testSizes = []SizeOption{
	{Name: "easy", Width: 5, Height: 5},
	{Name: "hard", Width: 9, Height: 9},
}

func press(t *testing.T, m NetwalkMenuModel, msgs ...tea.KeyMsg) NetwalkMenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(NetwalkMenuModel)
		require.True(t, ok)
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNetwalkMenuCampaign(t *testing.T) {
	m := press(t, NewNetwalkMenuModel("netwalk", testSizes, 80, 24), keyEnter)

	sel := m.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, NetwalkSelection{}, *sel)
}

func TestNetwalkMenuSelectLevel(t *testing.T) {
	m := NewNetwalkMenuModel("netwalk", testSizes, 80, 24)
	m = press(t, m, keyDown, keyEnter)
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "SELECT LEVEL")

	m = press(t, m, keyDown, keyDown, keyEnter)
	sel := m.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, 3, sel.Level)
}

func TestNetwalkMenuLevelCursorStops(t *testing.T) {
	m := press(t, NewNetwalkMenuModel("netwalk", testSizes, 80, 24), keyDown, keyEnter)
	for range netwalk.LevelCount() + 3 {
		m = press(t, m, keyDown)
	}
	m = press(t, m, keyEnter)

	require.NotNil(t, m.Selected())
	assert.Equal(t, netwalk.LevelCount(), m.Selected().Level)
}

func TestNetwalkMenuBack(t *testing.T) {
	m := press(t, NewNetwalkMenuModel("netwalk", testSizes, 80, 24), keyDown, keyEnter, keyEsc)
	assert.False(t, m.WantsBack(), "esc in level select returns to mode select")
	assert.Contains(t, m.View(), "Select game mode")

	m = press(t, m, keyEsc)
	assert.True(t, m.WantsBack())
	assert.Nil(t, m.Selected())
}

func TestNetwalkMenuFreePlay(t *testing.T) {
	m := NewNetwalkMenuModel(FreePlayID, testSizes, 80, 24)
	assert.Contains(t, m.View(), "hard")

	m = press(t, m, keyDown, keyEnter)
	sel := m.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, NetwalkSelection{Width: 9, Height: 9}, *sel)
}

func TestNetwalkMenuQuit(t *testing.T) {
	m := press(t, NewNetwalkMenuModel(FreePlayID, testSizes, 80, 24), runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestSelectionApply(t *testing.T) {
	cfg := core.RuntimeConfig{BoardW: 7, BoardH: 7}

	got := NetwalkSelection{Level: 4}.Apply(cfg)
	assert.Equal(t, 4, got.StartLevel)
	assert.Equal(t, 7, got.BoardW)

	got = NetwalkSelection{Width: 9, Height: 5}.Apply(cfg)
	assert.Equal(t, 0, got.StartLevel)
	assert.Equal(t, 9, got.BoardW)
	assert.Equal(t, 5, got.BoardH)
}
