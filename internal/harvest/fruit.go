package harvest

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicatePosition is returned when two fruits share a position.
	ErrDuplicatePosition = errors.New("harvest: duplicate fruit position")
	// ErrInvalidValue is returned for fruits worth zero or less.
	ErrInvalidValue = errors.New("harvest: fruit value must be positive")
)

// Fruit is a collectible item at a position on the line.
type Fruit struct {
	Position int `yaml:"position"`
	Value    int `yaml:"value"`
}

// FruitSet is a sequence of fruits ordered by ascending position with no two
// fruits at the same position. Build one with NewFruitSet when the input order
// is not already guaranteed.
type FruitSet []Fruit

// NewFruitSet copies fruits, sorts the copy by position and validates it.
func NewFruitSet(fruits []Fruit) (FruitSet, error) {
	set := make(FruitSet, len(fruits))
	copy(set, fruits)

	sort.Slice(set, func(i, j int) bool {
		return set[i].Position < set[j].Position
	})

	for i, f := range set {
		if f.Value <= 0 {
			return nil, fmt.Errorf("%w: %d at position %d", ErrInvalidValue, f.Value, f.Position)
		}
		if i > 0 && set[i-1].Position == f.Position {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePosition, f.Position)
		}
	}

	return set, nil
}

// Sorted reports whether the set satisfies the ordering MaxTotal relies on.
func (s FruitSet) Sorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i-1].Position >= s[i].Position {
			return false
		}
	}
	return true
}

// Total returns the sum of all fruit values.
func (s FruitSet) Total() int {
	total := 0
	for _, f := range s {
		total += f.Value
	}
	return total
}

// At returns the fruit at the given position, if any.
func (s FruitSet) At(pos int) (Fruit, bool) {
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Position >= pos
	})
	if i < len(s) && s[i].Position == pos {
		return s[i], true
	}
	return Fruit{}, false
}

// Span returns the lowest and highest fruit positions.
// Both are zero for an empty set.
func (s FruitSet) Span() (lo, hi int) {
	if len(s) == 0 {
		return 0, 0
	}
	return s[0].Position, s[len(s)-1].Position
}
