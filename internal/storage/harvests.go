package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/fruit-harvest/internal/core"
)

// HarvestEntry is one judged round as stored in the harvests table.
type HarvestEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Player    string // SSH user or empty for local play
	Level     int
	Collected int
	Optimal   int
	Perfect   bool
	Budget    int
	Steps     int
	Seed      int64
	CreatedAt time.Time
}

// SaveHarvest records a judged round and returns its generated run ID.
func (s *Store) SaveHarvest(player string, r core.RoundResult) (string, error) {
	runID := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO harvests
		 (run_id, game_id, player, level, collected, optimal, perfect, budget, steps, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, r.GameID, player, r.Level, r.Collected, r.Optimal, r.Perfect(), r.Budget, r.StepsUsed, r.Seed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save harvest: %w", err)
	}
	return runID, nil
}

// RecentHarvests returns the latest judged rounds for a game, newest first.
func (s *Store) RecentHarvests(gameID string, limit int) ([]HarvestEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, game_id, player, level, collected, optimal, perfect, budget, steps, seed, created_at
		 FROM harvests
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query harvests: %w", err)
	}
	defer rows.Close()

	var entries []HarvestEntry
	for rows.Next() {
		var e HarvestEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.RunID,
			&e.GameID,
			&e.Player,
			&e.Level,
			&e.Collected,
			&e.Optimal,
			&e.Perfect,
			&e.Budget,
			&e.Steps,
			&e.Seed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan harvest: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// PerfectRate returns how many rounds of a game were judged and the share of
// them that matched the optimum. The rate is 0 when nothing was played.
func (s *Store) PerfectRate(gameID string) (rounds int, rate float64, err error) {
	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(perfect), 0) FROM harvests WHERE game_id = ?`,
		gameID,
	).Scan(&rounds, &rate)
	if err != nil {
		return 0, 0, fmt.Errorf("storage: cannot get perfect rate: %w", err)
	}
	return rounds, rate, nil
}
