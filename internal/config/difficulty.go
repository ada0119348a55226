package config

import "math"

// DifficultyManager derives round parameters from the current difficulty
// level, which moves from the initial level towards 1.0 as the run goes on.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, rounds int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "rounds":
		progress = float64(rounds) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Budget shrinks the base step budget as difficulty rises. Never below 1.
func (d *DifficultyManager) Budget(base, score, rounds int) int {
	level := d.Level(score, rounds)
	reduction := int(level * float64(d.cfg.Scaling.BudgetReduction))
	return max(base-reduction, 1)
}

// FruitCount grows the number of fruit as difficulty rises, capped at the
// number of positions available.
func (d *DifficultyManager) FruitCount(base, positions, score, rounds int) int {
	level := d.Level(score, rounds)
	extra := int(level * float64(d.cfg.Scaling.FruitIncrease))
	return min(base+extra, positions)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
