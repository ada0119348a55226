package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one

	// FixedSeed keeps Seed across restarts (daily challenge).
	FixedSeed bool
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 FPS.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}

// RoundResult is emitted by games that judge each round against a best
// possible score. The platform persists and logs these.
type RoundResult struct {
	GameID    string
	Level     int // 1-based campaign level or endless round
	Collected int
	Optimal   int
	Budget    int
	StepsUsed int
	Seed      int64
}

// Perfect reports whether the round matched the best possible score.
func (r RoundResult) Perfect() bool {
	return r.Collected == r.Optimal
}

// ResultReporter is implemented by games that emit RoundResults.
// DrainResults returns the results produced since the previous call.
type ResultReporter interface {
	DrainResults() []RoundResult
}
