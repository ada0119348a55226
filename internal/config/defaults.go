package config

import (
	_ "embed"
)

//go:embed defaults/harvest.yaml
var defaultHarvestYAML []byte

// DefaultHarvestConfig returns the built-in Fruit Harvest configuration.
// It mirrors defaults/harvest.yaml and is used if the embedded file fails to
// parse.
func DefaultHarvestConfig() HarvestConfig {
	return HarvestConfig{
		World: HarvestWorld{
			Positions: 50,
			Start:     25,
		},
		Fruits: HarvestFruits{
			Count:    12,
			MinValue: 1,
			MaxValue: 5,
		},
		Budget: HarvestBudget{
			Steps: 20,
		},
		Effects: HarvestEffects{
			Particles:     true,
			ParticleCount: 8,
			ParticleLife:  30,
			TextLife:      60,
			Shake:         true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "rounds",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				BudgetReduction: 6,
				FruitIncrease:   8,
			},
		},
	}
}
