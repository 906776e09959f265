package particle

import (
	"math"

	"github.com/lixenwraith/cinder/parameter"
	"github.com/lixenwraith/cinder/render"
)

// Engine advances particle physics on top of a render.Canvas. It
// composes the canvas rather than extending it, so the same canvas can
// back unrelated features between particle updates. The engine owns
// its particle pool and emitter list exclusively; particles are always
// evaluated in append order, and eviction keeps the most recent.
type Engine struct {
	canvas *render.Canvas

	Gravity      float64
	MaxParticles int

	KillOutOfBounds bool
	BoundsMargin    float64

	particles []Particle
	emitters  []*Emitter
}

// NewEngine creates an engine over the given canvas with the parameter
// package defaults.
func NewEngine(canvas *render.Canvas) *Engine {
	return &Engine{
		canvas:          canvas,
		Gravity:         parameter.DefaultGravity,
		MaxParticles:    parameter.DefaultMaxParticles,
		KillOutOfBounds: true,
		BoundsMargin:    parameter.DefaultBoundsMargin,
	}
}

// Canvas returns the composed animation canvas
func (e *Engine) Canvas() *render.Canvas { return e.canvas }

// Count returns the live particle count
func (e *Engine) Count() int { return len(e.particles) }

// Add appends one particle to the pool
func (e *Engine) Add(p Particle) {
	e.particles = append(e.particles, p)
}

// AddAll appends a batch of particles in order
func (e *Engine) AddAll(ps []Particle) {
	e.particles = append(e.particles, ps...)
}

// AddEmitter registers an emitter, returning it for chaining
func (e *Engine) AddEmitter(em *Emitter) *Emitter {
	e.emitters = append(e.emitters, em)
	return em
}

// RemoveEmitter unregisters an emitter
func (e *Engine) RemoveEmitter(em *Emitter) {
	for i, existing := range e.emitters {
		if existing == em {
			e.emitters = append(e.emitters[:i], e.emitters[i+1:]...)
			return
		}
	}
}

// ClearParticles empties the pool
func (e *Engine) ClearParticles() {
	e.particles = e.particles[:0]
}

// ClearEmitters removes all emitters
func (e *Engine) ClearEmitters() {
	e.emitters = e.emitters[:0]
}

// Update advances the system by dt seconds: emitters spawn, every
// particle integrates, dead and out-of-bounds particles drop, and the
// pool is capped to the most recently appended MaxParticles in their
// original relative order. A non-positive dt uses the canvas frame
// interval.
func (e *Engine) Update(dt float64) {
	if dt <= 0 {
		dt = e.canvas.FrameTime().Seconds()
	}

	for _, em := range e.emitters {
		e.particles = append(e.particles, em.Update(dt)...)
	}

	for i := range e.particles {
		e.particles[i].Update(dt, e.Gravity)
	}

	// In-place filter preserves append order
	kept := e.particles[:0]
	for i := range e.particles {
		if e.keep(&e.particles[i]) {
			kept = append(kept, e.particles[i])
		}
	}
	e.particles = kept

	if len(e.particles) > e.MaxParticles {
		excess := len(e.particles) - e.MaxParticles
		e.particles = append(e.particles[:0], e.particles[excess:]...)
	}
}

// keep decides pool survival: alive, and inside the margin-padded
// bounds when out-of-bounds killing is enabled
func (e *Engine) keep(p *Particle) bool {
	if !p.Alive() {
		return false
	}
	if e.KillOutOfBounds {
		m := e.BoundsMargin
		w, h := float64(e.canvas.Width()), float64(e.canvas.Height())
		if p.X < -m || p.X >= w+m || p.Y < -m || p.Y >= h+m {
			return false
		}
	}
	return true
}

// Render draws every particle onto the canvas back buffer at its
// truncated cell, skipping blanks and cells outside the drawable area.
// Last writer to a cell wins; no blending at this layer.
func (e *Engine) Render() {
	w, h := e.canvas.Width(), e.canvas.Height()
	for i := range e.particles {
		p := &e.particles[i]
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		ch := p.CurrentChar()
		if ch == 0 || ch == render.Blank {
			continue
		}
		e.canvas.Set(x, y, ch)
	}
}

// BurstConfig shapes an EmitBurst. Zero values select the defaults
// noted on each field.
type BurstConfig struct {
	SpeedMin     float64 // default 5
	SpeedMax     float64 // default 15
	Lifetime     float64 // default 1, jittered per particle
	Char         rune    // default '*'
	CharSeq      []rune  // enables fade when set
	Spread       float64 // default full circle
	Direction    float64
	GravityScale float64 // default 1
	Drag         float64 // default 0.98
}

// EmitBurst synthesizes count particles at (x, y) with independently
// sampled angle, speed and lifetime, bypassing emitters and rate
// limiting.
func (e *Engine) EmitBurst(x, y float64, count int, cfg BurstConfig) {
	if cfg.SpeedMin == 0 {
		cfg.SpeedMin = parameter.DefaultSpeedMin
	}
	if cfg.SpeedMax == 0 {
		cfg.SpeedMax = parameter.DefaultSpeedMax
	}
	if cfg.Lifetime == 0 {
		cfg.Lifetime = 1
	}
	if cfg.Char == 0 {
		cfg.Char = '*'
	}
	if cfg.Spread == 0 {
		cfg.Spread = 2 * math.Pi
	}
	if cfg.GravityScale == 0 {
		cfg.GravityScale = 1
	}
	if cfg.Drag == 0 {
		cfg.Drag = parameter.DefaultDrag
	}

	for i := 0; i < count; i++ {
		angle := cfg.Direction + uniform(-cfg.Spread/2, cfg.Spread/2)
		speed := uniform(cfg.SpeedMin, cfg.SpeedMax)
		lt := cfg.Lifetime * uniform(0.7, 1.3)

		e.Add(Particle{
			X:            x,
			Y:            y,
			VX:           math.Cos(angle) * speed,
			VY:           math.Sin(angle) * speed,
			Lifetime:     lt,
			MaxLifetime:  lt,
			Char:         cfg.Char,
			CharSequence: cfg.CharSeq,
			GravityScale: cfg.GravityScale,
			Drag:         cfg.Drag,
			Fade:         len(cfg.CharSeq) > 0,
		})
	}
}
