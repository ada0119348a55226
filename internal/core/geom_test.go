package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 20, 6)
	if r.X != 30 || r.Y != 9 {
		t.Errorf("CenteredRect() origin = (%d, %d), expected (30, 9)", r.X, r.Y)
	}
	if r.Right() != 50 || r.Bottom() != 15 {
		t.Errorf("CenteredRect() edges = (%d, %d), expected (50, 15)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 || Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
}

func TestFruitColor(t *testing.T) {
	if FruitColor(1) != ColorOrange {
		t.Errorf("FruitColor(1) = %v, expected orange", FruitColor(1))
	}
	if FruitColor(5) != FruitColor(0) {
		t.Error("FruitColor should cycle through the palette")
	}
}

func TestInputFrameHorizontal(t *testing.T) {
	f := NewInputFrame()
	if f.Horizontal() != 0 {
		t.Errorf("empty frame Horizontal() = %d, expected 0", f.Horizontal())
	}
	f.Set(ActionLeft)
	if f.Horizontal() != -1 {
		t.Errorf("left Horizontal() = %d, expected -1", f.Horizontal())
	}
	f.Set(ActionRight)
	if f.Horizontal() != 0 {
		t.Errorf("left+right Horizontal() = %d, expected 0", f.Horizontal())
	}
	f.Clear()
	f.Set(ActionRight)
	if f.Horizontal() != 1 {
		t.Errorf("right Horizontal() = %d, expected 1", f.Horizontal())
	}
}
