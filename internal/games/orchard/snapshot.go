package orchard

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the outcome-relevant game state for determinism testing.
// Visual effects are left out on purpose.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int // 1-based level or endless round
	Score     int
	Player    int
	StepsLeft int
	Collected int
	Fruits    int // fruit still on the line
	RoundSeed int64
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	s := g.session
	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.roundNumber(),
		Score:     g.State().Score,
		Player:    s.Player,
		StepsLeft: s.StepsLeft,
		Collected: s.Collected,
		Fruits:    len(s.Fruits) - len(s.Eaten),
		RoundSeed: g.roundSeed,
		State:     state,
	}
}
