// Package particle simulates lightweight character particles on top of
// the render package. Particles and emitters are plain mutable records
// owned by an Engine; they have no behavior beyond their own update.
package particle

import (
	"math"

	"github.com/lixenwraith/cinder/vmath"
)

// Particle is a physical point entity. Alive is equivalent to
// Lifetime > 0.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Lifetime    float64 // seconds remaining
	MaxLifetime float64 // initial lifetime, for fade ratio

	Char         rune
	CharSequence []rune // optional fade sequence, brightest first

	GravityScale float64 // negative values model buoyancy
	Drag         float64 // per-update damping in (0,1]
	Fade         bool
}

// Alive reports whether the particle still has lifetime left
func (p *Particle) Alive() bool {
	return p.Lifetime > 0
}

// LifeRatio returns remaining life in [0,1], zero when expired
func (p *Particle) LifeRatio() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return vmath.Clamp(p.Lifetime/p.MaxLifetime, 0, 1)
}

// CurrentChar resolves the rune to draw: a fade-sequence index by spent
// lifetime when fading, the fixed char otherwise.
func (p *Particle) CurrentChar() rune {
	if len(p.CharSequence) > 0 && p.Fade {
		idx := int(math.Round((1 - p.LifeRatio()) * float64(len(p.CharSequence)-1)))
		return p.CharSequence[vmath.ClampInt(idx, 0, len(p.CharSequence)-1)]
	}
	return p.Char
}

// Update integrates one step of Euler physics: gravity into velocity,
// multiplicative drag, velocity into position, lifetime down by dt.
func (p *Particle) Update(dt, gravity float64) {
	p.VY += gravity * p.GravityScale * dt
	p.VX *= p.Drag
	p.VY *= p.Drag
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Lifetime -= dt
}
