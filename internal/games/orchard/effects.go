package orchard

import (
	"math/rand"

	"github.com/vovakirdan/fruit-harvest/internal/core"
)

// Visual effect tuning, in screen cells per tick.
const (
	particleGravity = 0.05
	floatRise       = 3.0 // rows a floating text climbs over its lifetime
)

// Particle is a short-lived spark thrown when fruit is picked.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   core.Color
	Life    int
	MaxLife int
}

// FloatingText is a label such as "+3" that drifts upward and fades.
type FloatingText struct {
	Text    string
	X       int
	StartY  float64
	Y       float64
	Color   core.Color
	Life    int
	MaxLife int
}

// Effects owns every purely visual animation. Nothing in here feeds back into
// the round outcome.
type Effects struct {
	rng       *rand.Rand
	particles []Particle
	texts     []FloatingText
	shake     int
	shakeX    int
}

// NewEffects creates an effect system with its own RNG so animations never
// disturb fruit generation.
func NewEffects(seed int64) *Effects {
	return &Effects{rng: rand.New(rand.NewSource(seed))}
}

// Burst throws count particles from (x, y).
func (e *Effects) Burst(x, y int, c core.Color, count, life int) {
	for range count {
		e.particles = append(e.particles, Particle{
			X:       float64(x),
			Y:       float64(y),
			VX:      e.rng.Float64()*1.2 - 0.6,
			VY:      -(0.2 + e.rng.Float64()*0.8),
			Color:   c,
			Life:    life,
			MaxLife: life,
		})
	}
}

// Float adds a rising label at (x, y).
func (e *Effects) Float(text string, x, y int, c core.Color, life int) {
	e.texts = append(e.texts, FloatingText{
		Text:    text,
		X:       x,
		StartY:  float64(y),
		Y:       float64(y),
		Color:   c,
		Life:    life,
		MaxLife: life,
	})
}

// Shake starts a screen shake of the given strength unless a stronger one is
// already running.
func (e *Effects) Shake(strength int) {
	e.shake = max(e.shake, strength)
}

// ShakeOffset is the horizontal offset to apply this frame.
func (e *Effects) ShakeOffset() int {
	return e.shakeX
}

// Update advances every animation by one tick.
func (e *Effects) Update() {
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += particleGravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	e.particles = alive

	texts := e.texts[:0]
	for _, t := range e.texts {
		t.Life--
		if t.Life <= 0 {
			continue
		}
		t.Y = t.StartY - (1-float64(t.Life)/float64(t.MaxLife))*floatRise
		texts = append(texts, t)
	}
	e.texts = texts

	if e.shake > 0 {
		// Terminal cells are coarse; cap the jitter at one column.
		e.shakeX = e.rng.Intn(3) - 1
		e.shake--
	} else {
		e.shakeX = 0
	}
}

// Active reports whether any animation is still running.
func (e *Effects) Active() bool {
	return len(e.particles) > 0 || len(e.texts) > 0 || e.shake > 0
}

// Render draws particles and floating texts. Fading particles shrink from
// '*' to '.'.
func (e *Effects) Render(dst *core.Screen, offsetX int) {
	for _, p := range e.particles {
		r := '*'
		if p.Life*2 < p.MaxLife {
			r = '.'
		}
		dst.SetColor(int(p.X)+offsetX, int(p.Y), r, p.Color)
	}
	for _, t := range e.texts {
		dst.DrawTextColor(t.X+offsetX, int(t.Y), t.Text, t.Color)
	}
}

// Reset drops every running animation.
func (e *Effects) Reset() {
	e.particles = e.particles[:0]
	e.texts = e.texts[:0]
	e.shake = 0
	e.shakeX = 0
}
