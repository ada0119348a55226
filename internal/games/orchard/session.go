package orchard

import (
	"github.com/vovakirdan/fruit-harvest/internal/harvest"
)

// Session is the mutable state of one round. The fruit set itself is never
// modified; what has been picked up is tracked in Eaten.
type Session struct {
	Fruits    harvest.FruitSet
	Positions int
	Start     int
	Budget    int

	Player    int
	StepsLeft int
	Collected int
	Eaten     map[int]bool

	finished bool
	optimum  int
}

// MoveResult describes what a single step did.
type MoveResult struct {
	Moved  bool
	Picked bool
	Fruit  harvest.Fruit
}

// NewSession starts a round with the player on start. A fruit lying on the
// start position is picked up immediately since reaching it costs no steps.
func NewSession(fruits harvest.FruitSet, positions, start, budget int) *Session {
	s := &Session{
		Fruits:    fruits,
		Positions: positions,
		Start:     start,
		Budget:    budget,
		Player:    start,
		StepsLeft: budget,
		Eaten:     make(map[int]bool),
	}
	s.pickUp()
	if s.StepsLeft <= 0 {
		s.Finish()
	}
	return s
}

// Move walks one position left (dx < 0) or right (dx > 0). Moves off either
// end of the line are refused and cost nothing.
func (s *Session) Move(dx int) MoveResult {
	if s.finished || dx == 0 || s.StepsLeft <= 0 {
		return MoveResult{}
	}

	next := s.Player + sign(dx)
	if next < 0 || next >= s.Positions {
		return MoveResult{}
	}

	s.Player = next
	s.StepsLeft--

	res := MoveResult{Moved: true}
	if f, ok := s.pickUp(); ok {
		res.Picked = true
		res.Fruit = f
	}

	if s.StepsLeft == 0 {
		s.Finish()
	}
	return res
}

func (s *Session) pickUp() (harvest.Fruit, bool) {
	f, ok := s.Fruits.At(s.Player)
	if !ok || s.Eaten[f.Position] {
		return harvest.Fruit{}, false
	}
	s.Eaten[f.Position] = true
	s.Collected += f.Value
	return f, true
}

// Finish ends the round and judges it. Calling it again is a no-op.
func (s *Session) Finish() {
	if s.finished {
		return
	}
	s.finished = true
	s.optimum = harvest.MaxTotal(s.Fruits, s.Start, s.Budget)
}

// Finished reports whether the round is over.
func (s *Session) Finished() bool {
	return s.finished
}

// Optimum returns the best total reachable this round.
func (s *Session) Optimum() int {
	if s.finished {
		return s.optimum
	}
	return harvest.MaxTotal(s.Fruits, s.Start, s.Budget)
}

// Perfect reports whether a finished round matched the optimum.
func (s *Session) Perfect() bool {
	return s.finished && s.Collected == s.optimum
}

// StepsUsed returns how many moves have been spent.
func (s *Session) StepsUsed() int {
	return s.Budget - s.StepsLeft
}

// BestRoute returns the window of fruit an optimal walk collects.
func (s *Session) BestRoute() harvest.Window {
	return harvest.BestWindow(s.Fruits, s.Start, s.Budget)
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
