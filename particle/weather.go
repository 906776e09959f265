package particle

import (
	"math/rand"

	"github.com/lixenwraith/cinder/vmath"
)

// WeatherRain spawns drops uniformly across the full canvas width, with
// density expressed as particles per column per second. It is itself a
// rate-accumulator spawner, fed to an Engine via AddAll each tick.
type WeatherRain struct {
	Width   int
	Height  int
	Density float64
	Chars   []rune

	accumulator float64
}

// NewWeatherRain creates a full-width rain system
func NewWeatherRain(width, height int, density float64, chars string) *WeatherRain {
	if chars == "" {
		chars = "|:'"
	}
	return &WeatherRain{
		Width:   width,
		Height:  height,
		Density: density,
		Chars:   []rune(chars),
	}
}

// Update returns the drops spawned for the elapsed time
func (r *WeatherRain) Update(dt float64) []Particle {
	r.accumulator += dt * float64(r.Width) * r.Density

	var drops []Particle
	for r.accumulator >= 1 {
		r.accumulator--

		speed := uniform(25, 40)
		lifetime := float64(r.Height) / speed * 1.5

		drops = append(drops, Particle{
			X:            uniform(0, float64(r.Width)),
			Y:            -1,
			VX:           uniform(-1, 1),
			VY:           speed,
			Lifetime:     lifetime,
			MaxLifetime:  lifetime,
			Char:         r.Chars[0],
			CharSequence: r.Chars,
			GravityScale: 0.3,
			Drag:         0.99,
			Fade:         true,
		})
	}
	return drops
}

// WeatherSnow spawns gently drifting flakes across the full width. A
// wind velocity drifts toward a periodically retargeted goal so the
// whole fall leans together.
type WeatherSnow struct {
	Width   int
	Height  int
	Density float64
	Chars   []rune

	accumulator float64
	wind        float64
	windTarget  float64
	windTimer   float64
}

// NewWeatherSnow creates a full-width snow system
func NewWeatherSnow(width, height int, density float64, chars string) *WeatherSnow {
	if chars == "" {
		chars = "*+.·"
	}
	return &WeatherSnow{
		Width:   width,
		Height:  height,
		Density: density,
		Chars:   []rune(chars),
	}
}

// Update advances the wind and returns newly spawned flakes
func (s *WeatherSnow) Update(dt float64) []Particle {
	s.windTimer -= dt
	if s.windTimer <= 0 {
		s.windTarget = uniform(-3, 3)
		s.windTimer = uniform(2, 5)
	}
	s.wind = vmath.Lerp(s.wind, s.windTarget, dt*0.5)

	s.accumulator += dt * float64(s.Width) * s.Density

	var flakes []Particle
	for s.accumulator >= 1 {
		s.accumulator--

		speed := uniform(3, 8)
		lifetime := float64(s.Height) / speed * 2

		flakes = append(flakes, Particle{
			X:            uniform(0, float64(s.Width)),
			Y:            -1,
			VX:           s.wind + uniform(-1, 1),
			VY:           speed,
			Lifetime:     lifetime,
			MaxLifetime:  lifetime,
			Char:         s.Chars[rand.Intn(len(s.Chars))],
			GravityScale: 0.05,
			Drag:         0.98,
			// Snow does not fade, it just falls off screen
			Fade: false,
		})
	}
	return flakes
}
