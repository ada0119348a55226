package harvest

import (
	"errors"
	"math/rand"
	"testing"
)

func mustSet(t *testing.T, pairs ...[2]int) FruitSet {
	t.Helper()
	fruits := make([]Fruit, len(pairs))
	for i, p := range pairs {
		fruits[i] = Fruit{Position: p[0], Value: p[1]}
	}
	set, err := NewFruitSet(fruits)
	if err != nil {
		t.Fatalf("NewFruitSet() failed: %v", err)
	}
	return set
}

func TestMaxTotalScenarios(t *testing.T) {
	tests := []struct {
		name     string
		fruits   [][2]int
		start, k int
		expected int
	}{
		{
			name:     "window left of start",
			fruits:   [][2]int{{0, 9}, {4, 1}, {5, 7}, {6, 2}, {7, 4}, {10, 9}},
			start:    5,
			k:        4,
			expected: 14,
		},
		{
			name:     "sparse fruits around start",
			fruits:   [][2]int{{0, 1}, {4, 3}, {7, 2}, {10, 5}, {11, 6}},
			start:    5,
			k:        4,
			expected: 5,
		},
		{
			name:     "right side only",
			fruits:   [][2]int{{2, 8}, {6, 3}, {8, 6}},
			start:    5,
			k:        4,
			expected: 9,
		},
		{
			name:     "nothing in reach",
			fruits:   [][2]int{{0, 3}, {1, 4}, {2, 10}},
			start:    200000,
			k:        2,
			expected: 0,
		},
		{
			name:     "single fruit at start with no budget",
			fruits:   [][2]int{{7, 4}},
			start:    7,
			k:        0,
			expected: 4,
		},
		{
			name:     "start left of all fruits",
			fruits:   [][2]int{{3, 2}, {5, 1}, {9, 7}},
			start:    0,
			k:        5,
			expected: 3,
		},
		{
			name:     "start right of all fruits",
			fruits:   [][2]int{{3, 2}, {5, 1}, {9, 7}},
			start:    12,
			k:        3,
			expected: 7,
		},
		{
			name:     "budget covers everything",
			fruits:   [][2]int{{0, 1}, {4, 3}, {7, 2}, {10, 5}, {11, 6}},
			start:    5,
			k:        17,
			expected: 17,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := mustSet(t, tc.fruits...)
			result := MaxTotal(set, tc.start, tc.k)
			if result != tc.expected {
				t.Errorf("MaxTotal(start=%d, k=%d) = %d, expected %d", tc.start, tc.k, result, tc.expected)
			}
		})
	}
}

func TestMaxTotalEmpty(t *testing.T) {
	for _, start := range []int{-10, 0, 25} {
		for _, k := range []int{0, 1, 100} {
			if got := MaxTotal(nil, start, k); got != 0 {
				t.Errorf("MaxTotal(nil, %d, %d) = %d, expected 0", start, k, got)
			}
		}
	}
}

func TestMaxTotalNegativeBudget(t *testing.T) {
	set := mustSet(t, [2]int{5, 3})
	if got := MaxTotal(set, 5, -1); got != 0 {
		t.Errorf("MaxTotal with k=-1 = %d, expected 0", got)
	}
}

func TestMaxTotalZeroBudget(t *testing.T) {
	set := mustSet(t, [2]int{2, 3}, [2]int{5, 8}, [2]int{6, 1})

	if got := MaxTotal(set, 5, 0); got != 8 {
		t.Errorf("fruit at start: MaxTotal() = %d, expected 8", got)
	}
	if got := MaxTotal(set, 4, 0); got != 0 {
		t.Errorf("no fruit at start: MaxTotal() = %d, expected 0", got)
	}
}

func TestMaxTotalLargeBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		set := randomSet(rng, 30, 12)
		lo, hi := set.Span()
		start := rng.Intn(40) - 5
		k := (hi - lo) + max(abs(start-lo), abs(start-hi))
		if got := MaxTotal(set, start, k); got != set.Total() {
			t.Fatalf("MaxTotal(%v, %d, %d) = %d, expected total %d", set, start, k, got, set.Total())
		}
	}
}

func TestMaxTotalMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		set := randomSet(rng, 50, 12)
		start := rng.Intn(50)
		prev := 0
		for k := 0; k <= 60; k++ {
			got := MaxTotal(set, start, k)
			if got < prev {
				t.Fatalf("MaxTotal decreased at k=%d: %d < %d (set=%v start=%d)", k, got, prev, set, start)
			}
			prev = got
		}
	}
}

func TestMaxTotalReflection(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for i := 0; i < 100; i++ {
		set := randomSet(rng, 50, 10)
		start := rng.Intn(50)
		k := rng.Intn(30)

		mirrored := make([]Fruit, len(set))
		for j, f := range set {
			mirrored[j] = Fruit{Position: -f.Position, Value: f.Value}
		}
		mset, err := NewFruitSet(mirrored)
		if err != nil {
			t.Fatalf("NewFruitSet() failed: %v", err)
		}

		a := MaxTotal(set, start, k)
		b := MaxTotal(mset, -start, k)
		if a != b {
			t.Fatalf("reflection changed result: %d vs %d (set=%v start=%d k=%d)", a, b, set, start, k)
		}
	}
}

func TestMaxTotalMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		set := randomSet(rng, 20, rng.Intn(8))
		start := rng.Intn(26) - 3
		k := rng.Intn(25)

		expected := bruteForce(set, start, k)
		if got := MaxTotal(set, start, k); got != expected {
			t.Fatalf("MaxTotal(%v, %d, %d) = %d, brute force = %d", set, start, k, got, expected)
		}
	}
}

func TestBestWindow(t *testing.T) {
	set := mustSet(t, [2]int{0, 9}, [2]int{4, 1}, [2]int{5, 7}, [2]int{6, 2}, [2]int{7, 4}, [2]int{10, 9})

	w := BestWindow(set, 5, 4)
	if w.Empty() {
		t.Fatal("BestWindow() returned an empty window")
	}
	if w.Left != 1 || w.Right != 4 {
		t.Errorf("BestWindow() range = [%d, %d], expected [1, 4]", w.Left, w.Right)
	}
	if w.Total != 14 {
		t.Errorf("BestWindow() total = %d, expected 14", w.Total)
	}
	if w.Cost != 4 {
		t.Errorf("BestWindow() cost = %d, expected 4", w.Cost)
	}
	if w.First != FirstLeft {
		t.Errorf("BestWindow() first = %v, expected left", w.First)
	}

	w = BestWindow(mustSet(t, [2]int{2, 8}, [2]int{6, 3}, [2]int{8, 6}), 8, 5)
	if w.First != FirstRight || w.Total != 9 {
		t.Errorf("BestWindow() = %+v, expected right-first total 9", w)
	}

	if w := BestWindow(nil, 0, 10); !w.Empty() {
		t.Errorf("BestWindow(nil) = %+v, expected empty", w)
	}
}

func TestTripCost(t *testing.T) {
	tests := []struct {
		start, left, right, expected int
	}{
		{5, 4, 7, 4},  // left first: 1 + 3
		{5, 2, 8, 9},  // 3 + 6
		{5, 5, 5, 0},  // standing on it
		{0, 3, 9, 9},  // start left of range
		{12, 3, 9, 9}, // start right of range
	}

	for _, tc := range tests {
		result := TripCost(tc.start, tc.left, tc.right)
		if result != tc.expected {
			t.Errorf("TripCost(%d, %d, %d) = %d, expected %d", tc.start, tc.left, tc.right, result, tc.expected)
		}
	}
}

func TestNewFruitSet(t *testing.T) {
	set, err := NewFruitSet([]Fruit{{Position: 9, Value: 1}, {Position: 2, Value: 5}, {Position: 4, Value: 3}})
	if err != nil {
		t.Fatalf("NewFruitSet() failed: %v", err)
	}
	if !set.Sorted() {
		t.Errorf("NewFruitSet() result not sorted: %v", set)
	}
	if set.Total() != 9 {
		t.Errorf("Total() = %d, expected 9", set.Total())
	}
	if f, ok := set.At(4); !ok || f.Value != 3 {
		t.Errorf("At(4) = %v, %v, expected value 3", f, ok)
	}
	if _, ok := set.At(5); ok {
		t.Error("At(5) should not find a fruit")
	}

	_, err = NewFruitSet([]Fruit{{Position: 1, Value: 1}, {Position: 1, Value: 2}})
	if !errors.Is(err, ErrDuplicatePosition) {
		t.Errorf("expected ErrDuplicatePosition, got %v", err)
	}

	_, err = NewFruitSet([]Fruit{{Position: 1, Value: 0}})
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestNewFruitSetDoesNotMutateInput(t *testing.T) {
	in := []Fruit{{Position: 3, Value: 1}, {Position: 1, Value: 1}}
	if _, err := NewFruitSet(in); err != nil {
		t.Fatalf("NewFruitSet() failed: %v", err)
	}
	if in[0].Position != 3 {
		t.Error("NewFruitSet should sort a copy, not the input")
	}
}

func TestMaxTotalIdempotent(t *testing.T) {
	set := mustSet(t, [2]int{1, 2}, [2]int{3, 4}, [2]int{8, 1})
	first := MaxTotal(set, 4, 5)
	for i := 0; i < 5; i++ {
		if got := MaxTotal(set, 4, 5); got != first {
			t.Fatalf("call %d returned %d, expected %d", i, got, first)
		}
	}
}

// randomSet returns up to count fruits on positions [0, positions).
func randomSet(rng *rand.Rand, positions, count int) FruitSet {
	count = min(count, positions)
	perm := rng.Perm(positions)[:count]
	fruits := make([]Fruit, count)
	for i, p := range perm {
		fruits[i] = Fruit{Position: p, Value: 1 + rng.Intn(5)}
	}
	set, err := NewFruitSet(fruits)
	if err != nil {
		panic(err)
	}
	return set
}

// bruteForce enumerates every walk of the form "go d1 steps one way, then
// come back and go d2 steps the other way" within the budget.
func bruteForce(set FruitSet, start, k int) int {
	best := 0
	for left := 0; left <= k; left++ {
		for right := 0; right <= k; right++ {
			cost := min(2*left+right, 2*right+left)
			if cost > k {
				continue
			}
			sum := 0
			for _, f := range set {
				if f.Position >= start-left && f.Position <= start+right {
					sum += f.Value
				}
			}
			best = max(best, sum)
		}
	}
	return best
}
