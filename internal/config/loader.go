package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fruit-harvest/internal/harvest"
)

// LoadHarvest loads Fruit Harvest configuration.
// Search order: customPath -> ~/.arcade/configs/harvest.yaml -> ./configs/harvest.yaml -> embedded default
func LoadHarvest(customPath string) (HarvestConfig, error) {
	// Start from defaults so a partial file only overrides what it names.
	cfg := DefaultHarvestConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath("harvest.yaml"); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	if c, ok := tryLoad(filepath.Join("configs", "harvest.yaml")); ok {
		return c, nil
	}

	var embedded HarvestConfig
	if err := yaml.Unmarshal(defaultHarvestYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultHarvestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order gets a chance.
func tryLoad(path string) (HarvestConfig, bool) {
	cfg := DefaultHarvestConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyHarvestPreset modifies the config based on a difficulty preset.
func ApplyHarvestPreset(cfg *HarvestConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Fruits.Count = min(cfg.Fruits.Count, 8)
		cfg.Budget.Steps += 5
	case DifficultyHard:
		cfg.Fruits.MaxValue += 4
		cfg.Budget.Steps = max(cfg.Budget.Steps-4, 1)
	}
}

// Puzzle is a fixed fruit layout for the solve command.
type Puzzle struct {
	Start  int             `yaml:"start"`
	Budget int             `yaml:"budget"`
	Fruits []harvest.Fruit `yaml:"fruits"`
}

// LoadPuzzle reads a puzzle file and returns it with its fruit sorted and
// validated.
func LoadPuzzle(path string) (Puzzle, harvest.FruitSet, error) {
	var p Puzzle
	data, err := os.ReadFile(path)
	if err != nil {
		return p, nil, fmt.Errorf("failed to read puzzle %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, nil, fmt.Errorf("failed to parse puzzle %s: %w", path, err)
	}
	if p.Budget < 0 {
		return p, nil, fmt.Errorf("puzzle %s: budget must not be negative, got %d", path, p.Budget)
	}
	set, err := harvest.NewFruitSet(p.Fruits)
	if err != nil {
		return p, nil, fmt.Errorf("puzzle %s: %w", path, err)
	}
	return p, set, nil
}
