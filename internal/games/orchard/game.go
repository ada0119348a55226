// Package orchard implements Fruit Harvest: walk a line of positions, pick up
// fruit within a step budget, and get judged against the best total that
// budget could have bought.
package orchard

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/fruit-harvest/internal/config"
	"github.com/vovakirdan/fruit-harvest/internal/core"
	"github.com/vovakirdan/fruit-harvest/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
	ModeDaily    Mode = "daily"
)

const (
	levelClearDuration = 120 // ~2 seconds at 60 FPS
	perfectTextLife    = 90

	shakeMove     = 2
	shakePickup   = 5
	shakeGameOver = 10
)

// Game implements Fruit Harvest.
type Game struct {
	mode Mode
	cfg  config.HarvestConfig
	diff *config.DifficultyManager

	rng  *rand.Rand // round generation only
	fx   *Effects
	seed int64
	tick uint64

	levelIndex int // campaign level (0-indexed)
	startLevel int // per-instance override of selectedStartLevel
	rounds     int // perfect rounds finished this run
	banked     int // score from finished rounds

	session   *Session
	params    Params
	roundSeed int64
	results   []core.RoundResult

	screenW   int
	screenH   int
	fixedSeed bool

	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting campaign level (1-10). 0 means start from
// the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// StartAtLevel makes the next Reset begin at the given campaign level
// (1-10). Unlike SetStartLevel it only affects this instance, which is what
// concurrent SSH sessions need.
func (g *Game) StartAtLevel(level int) {
	g.startLevel = level
}

// New creates a campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// NewDaily creates a daily challenge game. It plays like endless mode but
// keeps its own scores.
func NewDaily() *Game {
	return &Game{mode: ModeDaily}
}

func init() {
	registry.Register("harvest", func() registry.Game {
		return New()
	})
	registry.Register("harvest_endless", func() registry.Game {
		return NewEndless()
	})
	registry.Register("harvest_daily", func() registry.Game {
		return NewDaily()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeEndless:
		return "harvest_endless"
	case ModeDaily:
		return "harvest_daily"
	}
	return "harvest"
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeEndless:
		return "Fruit Harvest (Endless)"
	case ModeDaily:
		return "Fruit Harvest (Daily)"
	}
	return "Fruit Harvest"
}

// Description returns a one-line blurb for menus.
func (g *Game) Description() string {
	switch g.mode {
	case ModeEndless:
		return "Perfect harvests keep the run going"
	case ModeDaily:
		return "Today's layout, the same for every player"
	}
	return "Collect the most fruit your steps allow"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	g.seed = cfg.Seed
	g.fixedSeed = cfg.FixedSeed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.fx = NewEffects(cfg.Seed + 1)
	g.tick = 0
	g.rounds = 0
	g.banked = 0
	g.results = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	start := g.startLevel
	g.startLevel = 0
	if start == 0 && selectedStartLevel > 0 {
		start = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}
	g.levelIndex = 0
	if g.mode == ModeCampaign && start > 0 && start <= LevelCount() {
		g.levelIndex = start - 1
	}

	g.startRound()
}

// loadConfig reads the harvest config and applies the selected preset.
// A broken config file falls back to the built-in defaults.
func loadConfig() config.HarvestConfig {
	cfg, err := config.LoadHarvest(configPath)
	if err != nil {
		cfg = config.DefaultHarvestConfig()
	}
	if preset, err := config.ParsePreset(difficultyPreset); err == nil {
		config.ApplyHarvestPreset(&cfg, preset)
	}
	return cfg
}

// roundParams returns the layout of the next round.
func (g *Game) roundParams() Params {
	if g.mode == ModeCampaign {
		lvl := GetLevel(g.levelIndex)
		if lvl == nil {
			lvl = &Levels[len(Levels)-1]
		}
		return Params{
			Positions: lvl.Positions,
			Start:     lvl.Positions / 2,
			Count:     lvl.Fruits,
			MinValue:  lvl.MinValue,
			MaxValue:  lvl.MaxValue,
			Steps:     lvl.Steps,
		}
	}

	w := g.cfg.World
	score := g.banked
	return Params{
		Positions: w.Positions,
		Start:     w.StartPosition(),
		Count:     g.diff.FruitCount(g.cfg.Fruits.Count, w.Positions, score, g.rounds),
		MinValue:  g.cfg.Fruits.MinValue,
		MaxValue:  g.cfg.Fruits.MaxValue,
		Steps:     g.diff.Budget(g.cfg.Budget.Steps, score, g.rounds),
	}
}

// startRound scatters fresh fruit and puts the player back on the start.
func (g *Game) startRound() {
	g.params = g.roundParams()
	g.levelCleared = false
	g.levelClearTicks = 0
	g.fx.Reset()

	// Each round gets its own seed so a stored result can be replayed.
	g.roundSeed = g.rng.Int63()
	fruits := Generate(rand.New(rand.NewSource(g.roundSeed)), g.params)
	g.session = NewSession(fruits, g.params.Positions, g.params.Start, g.params.Steps)

	g.tooSmall = !g.fits(g.screenW, g.screenH)
	if g.session.Finished() {
		g.judge()
	}
}

// Resize adapts to a new terminal size without restarting the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = !g.fits(w, h)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		seed := g.seed
		if !g.fixedSeed {
			seed = g.rng.Int63()
		}
		g.Reset(core.RuntimeConfig{
			Seed:      seed,
			ScreenW:   g.screenW,
			ScreenH:   g.screenH,
			FixedSeed: g.fixedSeed,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.fx.Update()

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDuration {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if dx := input.Horizontal(); dx != 0 {
		g.move(dx)
	}
	if input.Has(core.ActionConfirm) {
		g.session.Finish()
	}
	if g.session.Finished() {
		g.judge()
	}

	return core.StepResult{State: g.State()}
}

// move walks the player and triggers the matching effects.
func (g *Game) move(dx int) {
	res := g.session.Move(dx)
	if !res.Moved {
		return
	}
	g.shake(shakeMove)
	if !res.Picked {
		return
	}

	g.shake(shakePickup)
	l := g.layout(g.screenW, g.screenH)
	x := l.lineX + res.Fruit.Position
	color := core.FruitColor(res.Fruit.Value)
	if g.cfg.Effects.Particles {
		g.fx.Burst(x, l.fruitY, color, g.cfg.Effects.ParticleCount, g.cfg.Effects.ParticleLife)
	}
	g.fx.Float(fmt.Sprintf("+%d", res.Fruit.Value), x, l.fruitY-2, color, g.cfg.Effects.TextLife)
}

func (g *Game) shake(strength int) {
	if g.cfg.Effects.Shake {
		g.fx.Shake(strength)
	}
}

// judge compares the finished round with the optimum and decides whether the
// run continues.
func (g *Game) judge() {
	s := g.session
	g.results = append(g.results, core.RoundResult{
		GameID:    g.ID(),
		Level:     g.roundNumber(),
		Collected: s.Collected,
		Optimal:   s.Optimum(),
		Budget:    s.Budget,
		StepsUsed: s.StepsUsed(),
		Seed:      g.roundSeed,
	})

	if s.Perfect() {
		g.levelCleared = true
		g.levelClearTicks = 0
		g.celebrate()
		return
	}
	g.gameOver = true
	g.shake(shakeGameOver)
}

// celebrate bursts fruit colours over the middle of the screen.
func (g *Game) celebrate() {
	x, y := g.screenW/2, g.screenH/2
	if g.cfg.Effects.Particles {
		g.fx.Burst(x, y, core.ColorYellow, g.cfg.Effects.ParticleCount*2, g.cfg.Effects.ParticleLife)
	}
	g.fx.Float("PERFECT!", x-4, y-2, core.ColorGreen, perfectTextLife)
}

// advanceLevel banks the finished round and starts the next one.
func (g *Game) advanceLevel() {
	g.banked += g.session.Collected
	g.rounds++

	if g.mode == ModeCampaign {
		g.levelIndex++
		if g.levelIndex >= LevelCount() {
			g.levelIndex = LevelCount() - 1
			g.levelCleared = false
			g.won = true
			return
		}
	}
	g.startRound()
}

// roundNumber is the 1-based campaign level or endless round.
func (g *Game) roundNumber() int {
	if g.mode != ModeCampaign {
		return g.rounds + 1
	}
	return g.levelIndex + 1
}

// DrainResults returns the rounds judged since the last call.
func (g *Game) DrainResults() []core.RoundResult {
	out := g.results
	g.results = nil
	return out
}

// Session exposes the current round.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.banked
	if g.session != nil && !g.won {
		score += g.session.Collected
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Won reports whether the last finished round was perfect.
func (g *Game) Won() bool {
	return g.won || (g.session != nil && g.session.Perfect())
}
