package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-harvest/internal/registry"
	"github.com/vovakirdan/fruit-harvest/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game, followed by
the most recently judged rounds.

Examples:
  arcade scores harvest
  arcade scores harvest_endless --recent 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent rounds to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Display scores
	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "When")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, humanize.Comma(int64(entry.Score)), humanize.Time(entry.CreatedAt))
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %s\n", humanize.Comma(int64(highScore)))
	}

	printRecentHarvests(store, gameID)
}

// printRecentHarvests lists the latest judged rounds and the perfect rate.
func printRecentHarvests(store *storage.Store, gameID string) {
	if flagRecent <= 0 {
		return
	}
	entries, err := store.RecentHarvests(gameID, flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}
	if len(entries) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent rounds:")
	fmt.Printf("  %-5s  %-9s  %-7s  %-7s  %s\n", "Level", "Harvest", "Perfect", "Steps", "When")
	fmt.Printf("  %-5s  %-9s  %-7s  %-7s  %s\n", "-----", "-------", "-------", "-----", "----")
	for _, e := range entries {
		perfect := "no"
		if e.Perfect {
			perfect = "yes"
		}
		fmt.Printf("  %-5d  %-9s  %-7s  %-7s  %s\n",
			e.Level,
			fmt.Sprintf("%d/%d", e.Collected, e.Optimal),
			perfect,
			fmt.Sprintf("%d/%d", e.Steps, e.Budget),
			humanize.Time(e.CreatedAt),
		)
	}

	if rounds, rate, err := store.PerfectRate(gameID); err == nil && rounds > 0 {
		fmt.Println()
		fmt.Printf("%s rounds judged, %.0f%% perfect\n", humanize.Comma(int64(rounds)), rate*100)
	}
}
