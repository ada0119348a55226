// arcade is a terminal game of picking fruit along a line against a step
// budget. Every round is judged against the best possible harvest.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: harvest)
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores and recent rounds
//	arcade solve [puzzle]    - Print the best harvest for a fixed layout
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level> - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/fruit-harvest/internal/games/orchard"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Fruit Harvest - pick the best fruit run in your terminal",
	Long: `Fruit Harvest puts you on a line of positions scattered with fruit.
You have a fixed number of steps. Walk, turn around at most once if you
like, and collect as much as you can. When the steps run out the round is
judged against the best harvest possible from your start.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent rounds
  solve    - Compute the best harvest for a fixed layout

Examples:
  arcade play
  arcade play --daily
  arcade menu
  arcade serve --ssh :2222
  arcade solve --start 5 --budget 4 --fruit 2:8 --fruit 6:3 --fruit 8:6`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(solveCmd)
}
