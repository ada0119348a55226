package tui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-harvest/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a moves left", runeKey("a"), core.ActionLeft, false},
		{"h moves left", runeKey("h"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"l moves right", runeKey("l"), core.ActionRight, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space confirms", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"r restarts", runeKey("r"), core.ActionRestart, false},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	if frame.Horizontal() != 1 {
		t.Errorf("Horizontal() = %d, expected 1", frame.Horizontal())
	}
	if !km.MapKeyToFrame(runeKey("q"), &frame) {
		t.Error("MapKeyToFrame(q) = false, expected quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey("b"), MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHarvestSelectionApply(t *testing.T) {
	base := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}
	tests := []struct {
		name      string
		sel       HarvestSelection
		wantID    string
		wantSeed  int64
		wantFixed bool
	}{
		{"campaign", HarvestSelection{Mode: HarvestModeCampaign}, "harvest", 42, false},
		{"campaign level", HarvestSelection{Mode: HarvestModeCampaign, Level: 3}, "harvest", 42, false},
		{"endless", HarvestSelection{Mode: HarvestModeEndless}, "harvest_endless", 42, false},
		{"daily", HarvestSelection{Mode: HarvestModeDaily}, "harvest_daily", 20261019, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, cfg := tt.sel.Apply(base, 20261019)
			if id != tt.wantID {
				t.Errorf("Apply() id = %q, expected %q", id, tt.wantID)
			}
			if cfg.Seed != tt.wantSeed || cfg.FixedSeed != tt.wantFixed {
				t.Errorf("Apply() seed, fixed = %d, %v, expected %d, %v", cfg.Seed, cfg.FixedSeed, tt.wantSeed, tt.wantFixed)
			}
			if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
				t.Errorf("Apply() changed screen size to %dx%d", cfg.ScreenW, cfg.ScreenH)
			}
		})
	}
}

func TestMenuHidesVariants(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	found := false
	for _, item := range m.items {
		if item.GameID == "harvest_endless" || item.GameID == "harvest_daily" {
			t.Errorf("menu lists variant %q", item.GameID)
		}
		if item.GameID == "harvest" {
			found = true
		}
	}
	if !found {
		t.Error("menu does not list harvest")
	}
}

func TestOutcomeLine(t *testing.T) {
	win := OutcomeLine(core.RoundResult{Collected: 9, Optimal: 9})
	if !strings.Contains(win, "WIN") || !strings.Contains(win, "Collected: 9 / Max: 9") {
		t.Errorf("OutcomeLine(perfect) = %q", win)
	}
	lose := OutcomeLine(core.RoundResult{Collected: 4, Optimal: 9})
	if !strings.Contains(lose, "LOSE") || !strings.Contains(lose, "Collected: 4 / Max: 9") {
		t.Errorf("OutcomeLine(short) = %q", lose)
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	logger := log.New(io.Discard)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewSessionModel(nil, cfg, "alice", 20261019, logger)

	// Selecting harvest opens the mode selector without ending the program
	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateModes {
		t.Fatalf("state = %v, expected mode selector", m.state)
	}
	if isQuit(cmd) {
		t.Fatal("menu selection forwarded tea.Quit")
	}

	// Daily challenge
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateGame || m.gameModel == nil {
		t.Fatalf("state = %v, expected game", m.state)
	}
	if got := m.gameModel.game.ID(); got != "harvest_daily" {
		t.Errorf("game ID = %q, expected harvest_daily", got)
	}
	if !m.gameModel.config.FixedSeed || m.gameModel.config.Seed != 20261019 {
		t.Errorf("daily config = seed %d fixed %v", m.gameModel.config.Seed, m.gameModel.config.FixedSeed)
	}
	if m.gameModel.player != "alice" {
		t.Errorf("player = %q, expected alice", m.gameModel.player)
	}

	// B does nothing mid-round, but leaves once paused
	m, _ = sendSession(t, m, runeKey("b"))
	if m.state != stateGame {
		t.Fatal("b left the game mid-round")
	}
	m, _ = sendSession(t, m, runeKey("p"))
	m, _ = sendSession(t, m, TickMsg{})
	if !m.gameModel.gameState.Paused {
		t.Fatal("game not paused after p")
	}
	m, cmd = sendSession(t, m, runeKey("b"))
	if m.state != stateMenu {
		t.Fatalf("state = %v, expected menu", m.state)
	}
	if isQuit(cmd) {
		t.Fatal("back to menu forwarded tea.Quit")
	}

	// Q in the menu ends the session
	m, cmd = sendSession(t, m, runeKey("q"))
	if !m.quitting || !isQuit(cmd) {
		t.Error("q in menu did not quit the session")
	}
}

func TestSessionScoreboardWithoutStore(t *testing.T) {
	logger := log.New(io.Discard)
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, "bob", 1, logger)

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScores {
		t.Fatalf("state = %v, expected scoreboard", m.state)
	}
	if isQuit(cmd) {
		t.Fatal("opening the scoreboard forwarded tea.Quit")
	}
	if m.View() == "" {
		t.Error("scoreboard view is empty")
	}
}

func TestNewSSHServerBadHostKeyDirOpensNoStore(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(blocker, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	cfg.LogLevel = log.FatalLevel

	if _, err := NewSSHServer(cfg); err == nil {
		t.Fatal("NewSSHServer() with an unusable host key dir expected error")
	}
	if _, err := os.Stat(cfg.DBPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("scores database created before the failure: stat err = %v", err)
	}
}
