package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/netwalk/internal/storage"
)

func TestScoreboardPages(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveScore("netwalk", "alice", 420)
	require.NoError(t, err)
	_, err = store.SaveSolve(storage.SolveRecord{Player: "bob", Width: 5, Height: 5, Seed: "ab", Moves: 9, Elapsed: 2500 * time.Millisecond})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30)

	require.Len(t, m.pages, 3, "two game modes and one solved size")
	assert.Equal(t, "netwalk", m.pages[0].GameID)
	assert.Equal(t, "Fastest 5x5", m.pages[2].Title)

	assert.Len(t, m.scores, 1)
	assert.Contains(t, m.View(), "420")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.True(t, m.currentPage().isSolves())
	require.Len(t, m.solves, 1)
	assert.Contains(t, m.View(), "0:02.5")
	assert.Contains(t, m.View(), "bob")
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	assert.Contains(t, m.View(), "No scores recorded yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0:00.0", formatDuration(0))
	assert.Equal(t, "1:05.3", formatDuration(65*time.Second+350*time.Millisecond))
}
