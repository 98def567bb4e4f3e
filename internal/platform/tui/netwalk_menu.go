package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/netwalk/internal/core"
	"github.com/vovakirdan/netwalk/internal/games/netwalk"
)

const (
	// FreePlayID is the registry ID of the single-board mode.
	FreePlayID = "netwalk_free"

	netwalkCampaignID = "netwalk"
)

// SizeOption is a named free-play board size.
type SizeOption struct {
	Name   string
	Width  int
	Height int
}

// NetwalkSelection holds the user's choice from the NetWalk menu.
type NetwalkSelection struct {
	Level  int // campaign start level, 1-indexed; 0 = from the beginning
	Width  int // free-play board width
	Height int // free-play board height
}

// Apply copies the selection into a runtime config.
func (s NetwalkSelection) Apply(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.StartLevel = s.Level
	if s.Width > 0 && s.Height > 0 {
		cfg.BoardW = s.Width
		cfg.BoardH = s.Height
	}
	return cfg
}

type netwalkScreen int

const (
	screenMode netwalkScreen = iota
	screenLevel
	screenSize
)

// NetwalkMenuModel lets users pick a campaign level or a free-play size.
type NetwalkMenuModel struct {
	screen    netwalkScreen
	cursor    int
	sizes     []SizeOption
	width     int
	height    int
	keyMapper *KeyMapper
	selection NetwalkSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewNetwalkMenuModel creates the sub-menu for the given game ID.
func NewNetwalkMenuModel(gameID string, sizes []SizeOption, width, height int) NetwalkMenuModel {
	screen := screenMode
	if gameID == FreePlayID {
		screen = screenSize
	}
	return NetwalkMenuModel{
		screen:    screen,
		sizes:     sizes,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m NetwalkMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m NetwalkMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m NetwalkMenuModel) optionCount() int {
	switch m.screen {
	case screenLevel:
		return netwalk.LevelCount()
	case screenSize:
		return len(m.sizes)
	default:
		return 2 // Campaign, Select Level
	}
}

func (m NetwalkMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.choose()
	case MenuActionBack:
		if m.screen == screenLevel {
			m.screen = screenMode
			m.cursor = 1
			return m, nil
		}
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m NetwalkMenuModel) choose() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMode:
		if m.cursor == 1 {
			m.screen = screenLevel
			m.cursor = 0
			return m, nil
		}
		m.selection = NetwalkSelection{}
	case screenLevel:
		m.selection = NetwalkSelection{Level: m.cursor + 1}
	case screenSize:
		if len(m.sizes) == 0 {
			m.selection = NetwalkSelection{}
			break
		}
		s := m.sizes[m.cursor]
		m.selection = NetwalkSelection{Width: s.Width, Height: s.Height}
	}
	m.choosing = false
	return m, tea.Quit
}

// View renders the current screen.
func (m NetwalkMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var title, prompt string
	var options []string

	switch m.screen {
	case screenMode:
		title, prompt = "N E T W A L K", "Select game mode:"
		options = []string{
			fmt.Sprintf("Campaign (%d levels)", netwalk.LevelCount()),
			"Select Level...",
		}
	case screenLevel:
		title, prompt = "SELECT LEVEL", ""
		sizes := netwalk.LevelSizes()
		for i, name := range netwalk.LevelNames() {
			options = append(options, fmt.Sprintf("%2d. %s (%s)", i+1, name, sizes[i]))
		}
	case screenSize:
		title, prompt = "FREE PLAY", "Select board size:"
		for _, s := range m.sizes {
			options = append(options, fmt.Sprintf("%-8s %dx%d", s.Name, s.Width, s.Height))
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")
	if prompt != "" {
		b.WriteString(centerText(prompt, m.width))
		b.WriteString("\n\n")
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m NetwalkMenuModel) Selected() *NetwalkSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m NetwalkMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m NetwalkMenuModel) WantsBack() bool {
	return m.back
}

// RunNetwalkMenu runs the NetWalk sub-menu. A nil selection with quit
// false means the user backed out to the main menu.
func RunNetwalkMenu(gameID string, sizes []SizeOption, cfg core.RuntimeConfig) (sel *NetwalkSelection, quit bool, err error) {
	model := NewNetwalkMenuModel(gameID, sizes, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(NetwalkMenuModel)
	if !ok || m.IsQuitting() {
		return nil, true, nil
	}
	return m.Selected(), false, nil
}
