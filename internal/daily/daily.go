// Package daily rotates the seed of the daily challenge. Everyone who plays
// on the same UTC day gets the same fruit layout, so their scores compare.
package daily

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robfig/cron/v3"
)

// Rotator holds the current day's seed and refreshes it at midnight UTC.
type Rotator struct {
	mu   sync.RWMutex
	day  string
	seed int64

	now    func() time.Time
	cron   *cron.Cron
	logger *log.Logger
}

// NewRotator creates a rotator primed with today's seed.
func NewRotator(logger *log.Logger) *Rotator {
	r := &Rotator{
		now:    time.Now,
		cron:   cron.New(cron.WithLocation(time.UTC)),
		logger: logger,
	}
	r.Rotate()
	return r
}

// SeedFor returns the challenge seed for the UTC day containing t.
// The seed reads as the date, e.g. 20261019.
func SeedFor(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return int64(y*10000 + int(m)*100 + d)
}

// DayFor formats the UTC day containing t.
func DayFor(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// Seed returns the current challenge seed.
func (r *Rotator) Seed() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.seed
}

// Day returns the current challenge day as YYYY-MM-DD.
func (r *Rotator) Day() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.day
}

// Rotate recomputes the seed from the clock. It reports whether the day
// changed.
func (r *Rotator) Rotate() bool {
	now := r.now()
	day := DayFor(now)

	r.mu.Lock()
	changed := day != r.day
	r.day = day
	r.seed = SeedFor(now)
	r.mu.Unlock()

	if changed && r.logger != nil {
		r.logger.Info("Daily challenge rotated", "day", day, "seed", SeedFor(now))
	}
	return changed
}

// Start schedules the midnight rotation.
func (r *Rotator) Start() error {
	if _, err := r.cron.AddFunc("@midnight", func() { r.Rotate() }); err != nil {
		return fmt.Errorf("daily: cannot schedule rotation: %w", err)
	}
	r.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running rotation to finish.
func (r *Rotator) Stop() {
	<-r.cron.Stop().Done()
}
