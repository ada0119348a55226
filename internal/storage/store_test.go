package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/fruit-harvest/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("harvest", 42); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("harvest"); high != 42 {
		t.Errorf("HighScore() = %d after reopen, expected 42", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 300, 10} {
		if _, err := store.SaveScore("harvest", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("harvest_endless", 500)

	tests := []struct {
		limit    int
		expected []int
	}{
		{3, []int{300, 200, 100}},
		{10, []int{300, 200, 100, 50, 10}},
		{0, []int{300, 200, 100, 50, 10}}, // 0 falls back to 10
	}

	for _, tc := range tests {
		scores, err := store.TopScores("harvest", tc.limit)
		if err != nil {
			t.Fatalf("TopScores() failed: %v", err)
		}
		if len(scores) != len(tc.expected) {
			t.Errorf("TopScores(limit=%d) returned %d scores, expected %d", tc.limit, len(scores), len(tc.expected))
			continue
		}
		for i, want := range tc.expected {
			if scores[i].Score != want {
				t.Errorf("TopScores(limit=%d)[%d] = %d, expected %d", tc.limit, i, scores[i].Score, want)
			}
			if scores[i].GameID != "harvest" {
				t.Errorf("TopScores() leaked game %q", scores[i].GameID)
			}
		}
	}

	all, err := store.AllScores("harvest")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("AllScores() returned %d scores, expected 5", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("harvest")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d for empty game, expected 0", high)
	}

	store.SaveScore("harvest", 12)
	store.SaveScore("harvest", 31)
	store.SaveScore("harvest", 20)

	if high, _ = store.HighScore("harvest"); high != 31 {
		t.Errorf("HighScore() = %d, expected 31", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("harvest", 100)
	store.SaveScore("harvest_endless", 300)
	store.SaveHarvest("", core.RoundResult{GameID: "harvest", Level: 1, Collected: 3, Optimal: 3})

	if err := store.ClearScores("harvest"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("harvest", 10); len(scores) != 0 {
		t.Errorf("Expected 0 harvest scores after clear, got %d", len(scores))
	}
	if rounds, _, _ := store.PerfectRate("harvest"); rounds != 0 {
		t.Errorf("Expected 0 harvest rounds after clear, got %d", rounds)
	}
	if scores, _ := store.TopScores("harvest_endless", 10); len(scores) != 1 {
		t.Error("harvest_endless scores should not be affected by clearing harvest")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("harvest")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("GetGameStats() on empty game = %+v", stats)
	}

	store.SaveScore("harvest", 10)
	store.SaveScore("harvest", 30)
	store.SaveScore("harvest_endless", 7)

	stats, err = store.GetGameStats("harvest")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("GetGameStats() = %+v, expected 2 games, high 30, avg 20, total 40", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("GetGameStats() LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("GetAllGamesStats() returned %d games, expected 2", len(all))
	}
	if all["harvest_endless"] == nil || all["harvest_endless"].HighScore != 7 {
		t.Errorf("GetAllGamesStats()[harvest_endless] = %+v", all["harvest_endless"])
	}
}

func TestStoreHarvests(t *testing.T) {
	store := openTestStore(t)

	rounds := []core.RoundResult{
		{GameID: "harvest", Level: 1, Collected: 9, Optimal: 9, Budget: 8, StepsUsed: 6, Seed: 11},
		{GameID: "harvest", Level: 2, Collected: 12, Optimal: 14, Budget: 10, StepsUsed: 10, Seed: 12},
		{GameID: "harvest_endless", Level: 1, Collected: 5, Optimal: 5, Budget: 20, StepsUsed: 20, Seed: 13},
	}

	ids := make(map[string]bool)
	for _, r := range rounds {
		id, err := store.SaveHarvest("alice", r)
		if err != nil {
			t.Fatalf("SaveHarvest() failed: %v", err)
		}
		if id == "" || ids[id] {
			t.Errorf("SaveHarvest() returned run ID %q, expected a fresh one", id)
		}
		ids[id] = true
	}

	entries, err := store.RecentHarvests("harvest", 10)
	if err != nil {
		t.Fatalf("RecentHarvests() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("RecentHarvests() returned %d entries, expected 2", len(entries))
	}

	// Same-second inserts fall back to id order, newest first.
	latest := entries[0]
	if latest.Level != 2 || latest.Collected != 12 || latest.Optimal != 14 || latest.Perfect {
		t.Errorf("RecentHarvests()[0] = %+v, expected the imperfect level 2 round", latest)
	}
	if latest.Player != "alice" || latest.Seed != 12 || latest.Budget != 10 || latest.Steps != 10 {
		t.Errorf("RecentHarvests()[0] = %+v, fields not round-tripped", latest)
	}
	if !entries[1].Perfect {
		t.Errorf("RecentHarvests()[1] = %+v, expected perfect", entries[1])
	}

	n, rate, err := store.PerfectRate("harvest")
	if err != nil {
		t.Fatalf("PerfectRate() failed: %v", err)
	}
	if n != 2 || rate != 0.5 {
		t.Errorf("PerfectRate() = %d, %v, expected 2, 0.5", n, rate)
	}

	n, rate, _ = store.PerfectRate("snake")
	if n != 0 || rate != 0 {
		t.Errorf("PerfectRate() on unplayed game = %d, %v, expected 0, 0", n, rate)
	}
}
