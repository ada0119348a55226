package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/fruit-harvest/internal/core"
	"github.com/vovakirdan/fruit-harvest/internal/daily"
	"github.com/vovakirdan/fruit-harvest/internal/registry"
	"github.com/vovakirdan/fruit-harvest/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// LogLevel filters server log output.
	LogLevel log.Level
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/scores.db",
		IdleTimeout: 30 * time.Minute,
		LogLevel:    log.InfoLevel,
	}
}

// SSHServer wraps a Wish SSH server for the arcade.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	daily  *daily.Rotator
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "harvest-ssh",
		Level:           cfg.LogLevel,
	})

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// The store is opened last so the early returns above leave nothing open.
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil // Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		daily:  daily.NewRotator(logger),
		logger: logger,
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, cfg, sshSession.User(), s.daily.Seed(), s.logger)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	if err := s.daily.Start(); err != nil {
		return err
	}
	s.logger.Info("starting SSH server", "address", s.config.Address, "daily", s.daily.Day())

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.daily.Stop()
	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionState is the screen a SessionModel is showing.
type sessionState int

const (
	stateMenu sessionState = iota
	stateModes
	stateScores
	stateGame
)

// levelStarter is implemented by games that can begin at a chosen level
// without touching package state.
type levelStarter interface {
	StartAtLevel(level int)
}

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	username  string
	sessionID string
	dailySeed int64
	logger    *log.Logger

	state     sessionState
	menu      MenuModel
	modes     HarvestModeModel
	scores    ScoreboardModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, dailySeed int64, logger *log.Logger) SessionModel {
	return SessionModel{
		store:     store,
		config:    cfg,
		username:  username,
		sessionID: uuid.New().String(),
		dailySeed: dailySeed,
		logger:    logger,
		menu:      NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateModes:
		return m.updateModes(msg)
	case stateScores:
		return m.updateScores(msg)
	case stateGame:
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode. Sub-models end with
// tea.Quit, which must not reach the SSH program.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.WantsScoreboard():
		m.state = stateScores
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	case m.menu.Selected() != nil:
		if m.menu.Selected().GameID == "harvest" {
			m.state = stateModes
			m.modes = NewHarvestModeModel(m.config.ScreenW, m.config.ScreenH)
			return m, m.modes.Init()
		}
		return m.startGame(m.menu.Selected().GameID, m.config, 0)
	}
	return m, cmd
}

func (m SessionModel) updateModes(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModes, cmd := m.modes.Update(msg)
	if modes, ok := newModes.(HarvestModeModel); ok {
		m.modes = modes
	}

	switch {
	case m.modes.IsQuitting():
		return m.quit()
	case m.modes.WantsBack():
		return m.toMenu()
	case m.modes.Selected() != nil:
		sel := *m.modes.Selected()
		gameID, cfg := sel.Apply(m.config, m.dailySeed)
		return m.startGame(gameID, cfg, sel.Level)
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scores, ok := newScores.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// startGame creates the game and switches the session to it.
func (m SessionModel) startGame(gameID string, cfg core.RuntimeConfig, level int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", gameID, "error", err)
		return m.toMenu()
	}
	if ls, ok := game.(levelStarter); ok && level > 0 {
		ls.StartAtLevel(level)
	}

	gm := NewGameModel(game, m.store, cfg,
		WithPlayer(m.username),
		WithResultHook(m.logResult),
		embedded(),
	)
	m.gameModel = &gm
	m.state = stateGame
	return m, gm.Init()
}

// logResult reports a judged round in the server log.
func (m SessionModel) logResult(r core.RoundResult) {
	m.logger.Info("harvest judged",
		"session", m.sessionID,
		"user", m.username,
		"game", r.GameID,
		"level", r.Level,
		"collected", r.Collected,
		"optimal", r.Optimal,
		"perfect", r.Perfect(),
		"seed", r.Seed,
	)
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	switch {
	case m.gameModel.BackToMenu():
		return m.toMenu()
	case m.gameModel.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateModes:
		return m.modes.View()
	case stateScores:
		return m.scores.View()
	case stateGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	}
	return m.menu.View()
}
