// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// HarvestConfig contains all configuration for the Fruit Harvest game.
type HarvestConfig struct {
	World      HarvestWorld     `yaml:"world"`
	Fruits     HarvestFruits    `yaml:"fruits"`
	Budget     HarvestBudget    `yaml:"budget"`
	Effects    HarvestEffects   `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// HarvestWorld defines the line the player walks on.
type HarvestWorld struct {
	Positions int `yaml:"positions"` // Number of positions, 0..Positions-1
	Start     int `yaml:"start"`     // Start position, -1 = middle of the line
}

// HarvestFruits defines how fruit is scattered each round.
type HarvestFruits struct {
	Count    int `yaml:"count"`
	MinValue int `yaml:"min_value"`
	MaxValue int `yaml:"max_value"`
}

// HarvestBudget defines the step budget for a round.
type HarvestBudget struct {
	Steps int `yaml:"steps"`
}

// HarvestEffects tunes the purely visual feedback.
type HarvestEffects struct {
	Particles     bool `yaml:"particles"`
	ParticleCount int  `yaml:"particle_count"`
	ParticleLife  int  `yaml:"particle_life"` // ticks
	TextLife      int  `yaml:"text_life"`     // ticks
	Shake         bool `yaml:"shake"`
}

// StartPosition resolves World.Start, mapping -1 to the middle of the line.
func (w HarvestWorld) StartPosition() int {
	if w.Start < 0 {
		return w.Positions / 2
	}
	return w.Start
}

// Validate reports settings that cannot produce a playable round.
func (c HarvestConfig) Validate() error {
	var errs []error
	if c.World.Positions <= 0 {
		errs = append(errs, fmt.Errorf("world.positions must be positive, got %d", c.World.Positions))
	}
	if c.World.Start < -1 || (c.World.Positions > 0 && c.World.Start >= c.World.Positions) {
		errs = append(errs, fmt.Errorf("world.start %d outside line of %d positions", c.World.Start, c.World.Positions))
	}
	if c.Fruits.Count < 0 || c.Fruits.Count > c.World.Positions {
		errs = append(errs, fmt.Errorf("fruits.count %d does not fit %d positions", c.Fruits.Count, c.World.Positions))
	}
	if c.Fruits.MinValue < 1 || c.Fruits.MaxValue < c.Fruits.MinValue {
		errs = append(errs, fmt.Errorf("fruit values must satisfy 1 <= min_value <= max_value, got %d..%d", c.Fruits.MinValue, c.Fruits.MaxValue))
	}
	if c.Budget.Steps < 0 {
		errs = append(errs, fmt.Errorf("budget.steps must not be negative, got %d", c.Budget.Steps))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid harvest config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "rounds", or "none"
	MaxAt int    `yaml:"max_at"` // Score/rounds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	BudgetReduction int `yaml:"budget_reduction"` // Steps removed at max difficulty
	FruitIncrease   int `yaml:"fruit_increase"`   // Extra fruit at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "use the
// config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
