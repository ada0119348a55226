package orchard

import (
	"math/rand"

	"github.com/vovakirdan/fruit-harvest/internal/harvest"
)

// Params describes one randomly generated round.
type Params struct {
	Positions int
	Start     int
	Count     int
	MinValue  int
	MaxValue  int
	Steps     int
}

// Generate scatters p.Count fruits on distinct positions of [0, p.Positions)
// with values in [p.MinValue, p.MaxValue]. The result is sorted by position.
func Generate(rng *rand.Rand, p Params) harvest.FruitSet {
	count := min(max(p.Count, 0), p.Positions)
	minV := max(p.MinValue, 1)
	maxV := max(p.MaxValue, minV)

	positions := rng.Perm(p.Positions)[:count]
	fruits := make([]harvest.Fruit, count)
	for i, pos := range positions {
		fruits[i] = harvest.Fruit{
			Position: pos,
			Value:    minV + rng.Intn(maxV-minV+1),
		}
	}

	set, err := harvest.NewFruitSet(fruits)
	if err != nil {
		// Positions come from a permutation and values are >= 1.
		panic(err)
	}
	return set
}
