// Package harvest computes the best achievable fruit total on a line of
// positions. It has no dependencies on rendering, randomness or timing, so the
// game layer can call it at the end of every round and compare the result with
// what the player actually collected.
package harvest

import "sort"

// Direction tells which end of a window the walker visits first.
type Direction int

const (
	FirstLeft Direction = iota
	FirstRight
)

func (d Direction) String() string {
	if d == FirstRight {
		return "right"
	}
	return "left"
}

// Window describes the best contiguous run of fruits found by BestWindow.
// Left and Right are indexes into the fruit set; both are -1 when nothing is
// reachable.
type Window struct {
	Left  int
	Right int
	Total int
	Cost  int
	First Direction
}

// Empty reports whether the window covers no fruit.
func (w Window) Empty() bool {
	return w.Left < 0 || w.Right < w.Left
}

// MaxTotal returns the maximum sum of fruit values a walker starting at start
// can collect with at most k unit moves, turning around at most once.
//
// fruits must be sorted by position (see NewFruitSet); the order is not
// re-checked here. A negative k is not a valid budget and yields 0.
func MaxTotal(fruits FruitSet, start, k int) int {
	return BestWindow(fruits, start, k).Total
}

// BestWindow runs the same sweep as MaxTotal and also reports which fruits
// make up the optimum and in which order the two ends are visited.
func BestWindow(fruits FruitSet, start, k int) Window {
	best := Window{Left: -1, Right: -1}
	if len(fruits) == 0 || k < 0 {
		return best
	}

	prefix := make([]int, len(fruits)+1)
	for i, f := range fruits {
		prefix[i+1] = prefix[i] + f.Value
	}

	first := sort.Search(len(fruits), func(i int) bool {
		return fruits[i].Position >= start-k
	})

	l := first
	for r := first; r < len(fruits); r++ {
		if fruits[r].Position > start+k {
			break
		}
		for l <= r && TripCost(start, fruits[l].Position, fruits[r].Position) > k {
			l++
		}
		if l > r {
			continue
		}

		sum := prefix[r+1] - prefix[l]
		if sum > best.Total {
			lp, rp := fruits[l].Position, fruits[r].Position
			best = Window{
				Left:  l,
				Right: r,
				Total: sum,
				Cost:  TripCost(start, lp, rp),
				First: firstEnd(start, lp, rp),
			}
		}
	}

	return best
}

// TripCost is the fewest moves needed to visit every position in
// [left, right] from start: walk to one end, then across to the other.
func TripCost(start, left, right int) int {
	span := right - left
	return min(abs(start-left), abs(start-right)) + span
}

// firstEnd picks the end reached first on a cheapest walk. Ties go left.
func firstEnd(start, left, right int) Direction {
	if abs(start-right) < abs(start-left) {
		return FirstRight
	}
	return FirstLeft
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
