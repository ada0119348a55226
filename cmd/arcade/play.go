package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-harvest/internal/config"
	"github.com/vovakirdan/fruit-harvest/internal/core"
	"github.com/vovakirdan/fruit-harvest/internal/daily"
	"github.com/vovakirdan/fruit-harvest/internal/games/orchard"
	"github.com/vovakirdan/fruit-harvest/internal/platform/tui"
	"github.com/vovakirdan/fruit-harvest/internal/registry"
	"github.com/vovakirdan/fruit-harvest/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDaily      bool
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game. Without a game ID, Fruit Harvest
starts with its mode selector.

Controls:
  Left/Right, A/D, H/L - Step along the line
  Enter/Space          - End the round early
  P/Esc                - Pause
  R                    - Restart (after game over)
  Ctrl+S               - Save a screenshot
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - More steps, smaller endless growth
  normal - Config as shipped
  hard   - Fewer steps, richer fruit
  fixed  - No progression between endless rounds

Examples:
  arcade play
  arcade play harvest --level 4
  arcade play harvest_endless --difficulty hard
  arcade play --daily
  arcade play harvest_daily
  arcade play --config ./my-harvest.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagDaily, "daily", false, "Play today's daily challenge")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-10)")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyHarvestFlags validates --difficulty and hands --config and
// --difficulty to the game package before any game is created.
func applyHarvestFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	orchard.SetConfigPath(flagConfig)
	orchard.SetDifficultyPreset(flagDifficulty)
	return nil
}

// harvestSelection decides the mode from flags, falling back to the
// interactive selector. A nil selection means the player backed out.
func harvestSelection(gameID string, cfg core.RuntimeConfig) (*tui.HarvestSelection, error) {
	switch {
	case flagDaily, gameID == "harvest_daily":
		return &tui.HarvestSelection{Mode: tui.HarvestModeDaily}, nil
	case flagLevel > 0:
		if flagLevel > orchard.LevelCount() {
			return nil, fmt.Errorf("--level must be between 1 and %d", orchard.LevelCount())
		}
		return &tui.HarvestSelection{Mode: tui.HarvestModeCampaign, Level: flagLevel}, nil
	case gameID == "harvest_endless":
		return &tui.HarvestSelection{Mode: tui.HarvestModeEndless}, nil
	}
	return tui.RunHarvestModeSelector(cfg)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "harvest"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	if err := applyHarvestFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	selection, err := harvestSelection(gameID, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// User pressed back or quit
	if selection == nil {
		return
	}

	gameID, cfg = selection.Apply(cfg, daily.SeedFor(time.Now()))
	orchard.SetStartLevel(selection.Level)
	logger.Debug("starting game", "game", gameID, "level", selection.Level, "seed", cfg.Seed, "fixed", cfg.FixedSeed)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	outcome, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if last, ok := outcome.Last(); ok {
		fmt.Println(tui.OutcomeLine(last))
	}
}
