package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/fruit-harvest/internal/registry"
	"github.com/vovakirdan/fruit-harvest/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the board list sidebar
	sidebarWidth       = 28  // Width of the board list sidebar
	maxScores          = 100 // Max rows to load
)

// boardKind selects what a scoreboard tab lists.
type boardKind int

const (
	boardScores boardKind = iota
	boardRounds
)

// board is one tab of the scoreboard.
type board struct {
	GameID string
	Title  string
	Kind   boardKind
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows high scores and recently judged rounds per game.
type ScoreboardModel struct {
	boards      []board
	cursor      int
	store       *storage.Store
	rows        []table.Row
	summary     string // perfect-rate line for round boards
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var boards []board
	for _, g := range registry.List() {
		boards = append(boards,
			board{GameID: g.ID, Title: g.Title, Kind: boardScores},
			board{GameID: g.ID, Title: g.Title + " rounds", Kind: boardRounds},
		)
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		boards:      boards,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *ScoreboardModel) current() (board, bool) {
	if len(m.boards) == 0 {
		return board{}, false
	}
	return m.boards[m.cursor], true
}

// columns returns the table layout for the current board.
func (m *ScoreboardModel) columns() []table.Column {
	b, _ := m.current()
	if b.Kind == boardRounds {
		return []table.Column{
			{Title: "Lvl", Width: 4},
			{Title: "Harvest", Width: 9},
			{Title: "Perfect", Width: 8},
			{Title: "Steps", Width: 7},
			{Title: "Player", Width: 10},
			{Title: "When", Width: 15},
		}
	}

	dateWidth := m.width - 4 - 22
	if m.showSidebar {
		dateWidth -= sidebarWidth + 3
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "When", Width: min(max(dateWidth, 15), 20)},
	}
}

// createTable creates a new table with the current board's columns.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches the rows of the current board.
func (m *ScoreboardModel) load() {
	m.rows = nil
	m.summary = ""

	b, ok := m.current()
	if ok && m.store != nil {
		if b.Kind == boardRounds {
			m.loadRounds(b.GameID)
		} else {
			m.loadScores(b.GameID)
		}
	}

	// Rows must never be wider than the columns, so drop them first.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) loadScores(gameID string) {
	scores, err := m.store.TopScores(gameID, maxScores)
	if err != nil {
		return
	}
	for i, s := range scores {
		m.rows = append(m.rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(s.Score)),
			humanize.Time(s.CreatedAt),
		})
	}
}

func (m *ScoreboardModel) loadRounds(gameID string) {
	entries, err := m.store.RecentHarvests(gameID, maxScores)
	if err != nil {
		return
	}
	for _, e := range entries {
		perfect := "-"
		if e.Perfect {
			perfect = "yes"
		}
		player := e.Player
		if player == "" {
			player = "local"
		}
		m.rows = append(m.rows, table.Row{
			fmt.Sprint(e.Level),
			fmt.Sprintf("%d/%d", e.Collected, e.Optimal),
			perfect,
			fmt.Sprintf("%d/%d", e.Steps, e.Budget),
			player,
			humanize.Time(e.CreatedAt),
		})
	}

	if rounds, rate, err := m.store.PerfectRate(gameID); err == nil && rounds > 0 {
		m.summary = fmt.Sprintf("%s rounds judged, %.0f%% perfect", humanize.Comma(int64(rounds)), rate*100)
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBoard):
			if len(m.boards) > 0 {
				m.cursor = (m.cursor + 1) % len(m.boards)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard):
			if len(m.boards) > 0 {
				m.cursor = (m.cursor - 1 + len(m.boards)) % len(m.boards)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "HIGH SCORES"
	if cur, ok := m.current(); ok {
		title = fmt.Sprintf("HIGH SCORES - %s", cur.Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.summary), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderWideLayout renders the board list as a sidebar next to the table.
func (m ScoreboardModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, bd := range m.boards {
		name := truncate(bd.Title, sidebarWidth-6)
		if i == m.cursor {
			sidebar.WriteString(menuCursor.Render("> " + name))
		} else {
			sidebar.WriteString("  " + name)
		}
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(sidebarWidth).Render(sidebar.String()),
		"  ",
		panelStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout shows only the current board name above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder
	if cur, ok := m.current(); ok {
		b.WriteString(centerText(fmt.Sprintf("< %s >", cur.Title), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(panelStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nPlay a round to fill this board!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("scoreboard: %w", err)
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
