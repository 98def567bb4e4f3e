package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/netwalk/internal/core"
)

// actionBinding ties a key binding to the game action it produces.
type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// menuBinding ties a key binding to a menu action.
type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

var quitBinding = key.NewBinding(key.WithKeys("ctrl+c", "q"))

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the NetWalk bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: []actionBinding{
			{key.NewBinding(key.WithKeys("w", "up", "k")), core.ActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), core.ActionDown},
			{key.NewBinding(key.WithKeys("a", "left", "h")), core.ActionLeft},
			{key.NewBinding(key.WithKeys("d", "right", "l")), core.ActionRight},
			{key.NewBinding(key.WithKeys("x", " ")), core.ActionRotateRight},
			{key.NewBinding(key.WithKeys("z")), core.ActionRotateLeft},
			{key.NewBinding(key.WithKeys("enter")), core.ActionConfirm},
			{key.NewBinding(key.WithKeys("n")), core.ActionNewBoard},
			{key.NewBinding(key.WithKeys("b", "esc")), core.ActionBack},
			{key.NewBinding(key.WithKeys("p")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r")), core.ActionRestart},
		},
		menu: []menuBinding{
			{key.NewBinding(key.WithKeys("w", "up", "k")), MenuActionUp},
			{key.NewBinding(key.WithKeys("s", "down", "j")), MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " ")), MenuActionSelect},
			{key.NewBinding(key.WithKeys("b", "esc")), MenuActionBack},
			{key.NewBinding(key.WithKeys("tab")), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, quitBinding) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is an action in the menus outside the game.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, quitBinding) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
