package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-harvest/internal/core"
	"github.com/vovakirdan/fruit-harvest/internal/games/orchard"
)

// HarvestMode represents the selected Fruit Harvest mode.
type HarvestMode int

const (
	HarvestModeCampaign HarvestMode = iota
	HarvestModeEndless
	HarvestModeDaily
)

// HarvestSelection holds the user's choice from the Fruit Harvest menu.
type HarvestSelection struct {
	Mode  HarvestMode
	Level int // 0 = start from beginning, 1-10 = specific level
}

// Apply turns the selection into a game ID and runtime config. The daily
// challenge plays like endless mode, pinned to the day's seed and scored
// under its own ID.
func (s HarvestSelection) Apply(cfg core.RuntimeConfig, dailySeed int64) (string, core.RuntimeConfig) {
	switch s.Mode {
	case HarvestModeEndless:
		return "harvest_endless", cfg
	case HarvestModeDaily:
		cfg.Seed = dailySeed
		cfg.FixedSeed = true
		return "harvest_daily", cfg
	default:
		return "harvest", cfg
	}
}

var harvestModes = []string{
	"Campaign (10 levels)",
	"Endless Mode",
	"Daily Challenge",
	"Select Level...",
}

const selectLevelItem = 3

// HarvestModeModel lets users choose the game mode and starting level.
type HarvestModeModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     HarvestSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewHarvestModeModel creates a new mode selection model.
func NewHarvestModeModel(width, height int) HarvestModeModel {
	return HarvestModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m HarvestModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HarvestModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m HarvestModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(harvestModes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == selectLevelItem {
			m.inLevelSelect = true
			m.levelCursor = 0
			return m, nil
		}
		m.choosing = false
		m.selection = HarvestSelection{Mode: HarvestMode(m.cursor)}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m HarvestModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < orchard.LevelCount()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = HarvestSelection{
			Mode:  HarvestModeCampaign,
			Level: m.levelCursor + 1, // 1-indexed
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the mode or level list.
func (m HarvestModeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inLevelSelect {
		b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
		b.WriteString("\n\n")
		for i, lvl := range orchard.Levels {
			line := fmt.Sprintf("%2d. %-14s %2d steps", lvl.ID, lvl.Name, lvl.Steps)
			b.WriteString(centerText(m.item(line, i == m.levelCursor), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(menuTitleStyle.Render("F R U I T   H A R V E S T"), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("Select game mode:", m.width))
		b.WriteString("\n\n")
		for i, mode := range harvestModes {
			b.WriteString(centerText(m.item(mode, i == m.cursor), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

func (m HarvestModeModel) item(text string, active bool) string {
	if active {
		return menuCursor.Render("> " + text)
	}
	return "  " + text
}

// Selected returns the selection, or nil if still choosing.
func (m HarvestModeModel) Selected() *HarvestSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m HarvestModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m HarvestModeModel) WantsBack() bool {
	return m.back
}

// RunHarvestModeSelector runs the mode selection and returns the selection,
// or nil when the user backed out.
func RunHarvestModeSelector(cfg core.RuntimeConfig) (*HarvestSelection, error) {
	p := tea.NewProgram(NewHarvestModeModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("harvest menu: %w", err)
	}

	m, ok := finalModel.(HarvestModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
