package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-harvest/internal/core"
	"github.com/vovakirdan/fruit-harvest/internal/registry"
	"github.com/vovakirdan/fruit-harvest/internal/storage"
)

// GameModel is the Bubble Tea model that runs one game at a fixed tick.
// Standalone it quits on Q; inside a SessionModel it can also return to the
// menu.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	player   string                 // SSH user, empty for local play
	onResult func(core.RoundResult) // optional hook per judged round
	results  []core.RoundResult
	embedded bool // running inside a SessionModel

	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// GameOption customizes a GameModel.
type GameOption func(*GameModel)

// WithPlayer tags stored results with a player name.
func WithPlayer(name string) GameOption {
	return func(m *GameModel) {
		m.player = name
	}
}

// WithResultHook calls fn for every judged round after it is stored.
func WithResultHook(fn func(core.RoundResult)) GameOption {
	return func(m *GameModel) {
		m.onResult = fn
	}
}

func embedded() GameOption {
	return func(m *GameModel) {
		m.embedded = true
	}
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.embedded && m.wantsMenu(msg) {
		m.backToMenu = true
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// wantsMenu reports whether a key should leave the game for the menu:
// B while paused or after game over, or Esc after game over.
func (m GameModel) wantsMenu(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "b":
		return m.gameState.GameOver || m.gameState.Paused
	case "esc":
		return m.gameState.GameOver
	}
	return false
}

// handleResize keeps the running round when the game supports it and
// restarts it otherwise.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.config.FixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.collectResults()

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// collectResults stores every round the game judged during this tick.
func (m *GameModel) collectResults() {
	rep, ok := m.game.(core.ResultReporter)
	if !ok {
		return
	}
	for _, r := range rep.DrainResults() {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveHarvest(m.player, r)
		}
		if m.onResult != nil {
			m.onResult(r)
		}
		m.results = append(m.results, r)
	}
}

// saveScreenshot saves the current screen to ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Results returns every round judged while the model ran.
func (m GameModel) Results() []core.RoundResult {
	return m.results
}

// Outcome describes how a local game ended.
type Outcome struct {
	Score   int
	Results []core.RoundResult
}

// Last returns the most recent judged round.
func (o Outcome) Last() (core.RoundResult, bool) {
	if len(o.Results) == 0 {
		return core.RoundResult{}, false
	}
	return o.Results[len(o.Results)-1], true
}

// Run starts the Bubble Tea program with the given game and blocks until the
// player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) (Outcome, error) {
	model := NewGameModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Outcome{}, err
	}

	m, ok := final.(GameModel)
	if !ok {
		return Outcome{}, nil
	}
	return Outcome{Score: m.gameState.Score, Results: m.Results()}, nil
}
