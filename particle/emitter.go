package particle

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/cinder/parameter"
)

// Emitter spawns particles into a cone at a configurable rate. The
// fractional accumulator carries sub-particle remainder across ticks,
// so the long-run average rate is exact regardless of dt jitter.
type Emitter struct {
	X, Y float64

	SpawnRate float64 // particles per second; <=0 spawns nothing
	Spread    float64 // cone width in radians
	Direction float64 // base angle in radians (0 = right, pi/2 = down)

	SpeedMin, SpeedMax       float64
	LifetimeMin, LifetimeMax float64

	Char         rune
	CharSequence []rune

	GravityScale float64
	Drag         float64
	Fade         bool

	BurstCount int // default count for Burst(0)
	Active     bool

	accumulator float64
}

// NewEmitter creates an emitter with the package defaults: upward
// 45-degree cone at 10 particles per second.
func NewEmitter() *Emitter {
	return &Emitter{
		SpawnRate:    parameter.DefaultSpawnRate,
		Spread:       math.Pi / 4,
		Direction:    -math.Pi / 2,
		SpeedMin:     parameter.DefaultSpeedMin,
		SpeedMax:     parameter.DefaultSpeedMax,
		LifetimeMin:  parameter.DefaultLifetimeMin,
		LifetimeMax:  parameter.DefaultLifetimeMax,
		Char:         '*',
		GravityScale: 1,
		Drag:         parameter.DefaultDrag,
		Fade:         true,
		Active:       true,
	}
}

// Spawn creates one particle with randomized angle, speed and lifetime
func (e *Emitter) Spawn() Particle {
	angle := e.Direction + uniform(-e.Spread/2, e.Spread/2)
	speed := uniform(e.SpeedMin, e.SpeedMax)
	lifetime := uniform(e.LifetimeMin, e.LifetimeMax)

	return Particle{
		X:            e.X,
		Y:            e.Y,
		VX:           math.Cos(angle) * speed,
		VY:           math.Sin(angle) * speed,
		Lifetime:     lifetime,
		MaxLifetime:  lifetime,
		Char:         e.Char,
		CharSequence: e.CharSequence,
		GravityScale: e.GravityScale,
		Drag:         e.Drag,
		Fade:         e.Fade,
	}
}

// Burst returns count independently sampled particles, bypassing the
// rate accumulator. A non-positive count uses BurstCount.
func (e *Emitter) Burst(count int) []Particle {
	if count <= 0 {
		count = e.BurstCount
	}
	out := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, e.Spawn())
	}
	return out
}

// Update accumulates spawn credit for the elapsed time and returns the
// whole particles it covers. Inactive or zero-rate emitters yield
// nothing and accrue no credit.
func (e *Emitter) Update(dt float64) []Particle {
	if !e.Active || e.SpawnRate <= 0 {
		return nil
	}

	e.accumulator += e.SpawnRate * dt

	var spawned []Particle
	for e.accumulator >= 1 {
		e.accumulator--
		spawned = append(spawned, e.Spawn())
	}
	return spawned
}

// uniform samples from [lo, hi)
func uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rand.Float64()*(hi-lo)
}
