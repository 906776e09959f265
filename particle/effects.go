package particle

import (
	"math"
)

// Fade sequences, brightest first. Injected into emitters at
// construction; nothing reads them as process-wide state.
const (
	FadeSparkle   = "@*+:. "
	FadeBlock     = "█▓▒░ "
	FadeDots      = "●◉○◌ "
	FadeStars     = "★☆*+. "
	FadeFire      = "#@%*+:. "
	FadeSmoke     = "@#%*=:-. "
	FadeSnow      = "*+:. "
	FadeRain      = "|:. "
	FadeExplosion = "#@*+=:. "
)

// FireworkEmitter creates a manual-burst firework at (x, y). Call
// Burst to launch.
func FireworkEmitter(x, y float64, chars string) *Emitter {
	if chars == "" {
		chars = FadeSparkle
	}
	e := NewEmitter()
	e.X, e.Y = x, y
	e.SpawnRate = 0 // manual burst only
	e.Spread = 2 * math.Pi
	e.Direction = 0
	e.SpeedMin, e.SpeedMax = 10, 25
	e.LifetimeMin, e.LifetimeMax = 0.8, 1.5
	e.Char = []rune(chars)[0]
	e.CharSequence = []rune(chars)
	e.GravityScale = 0.8
	e.Drag = 0.96
	e.BurstCount = 50
	return e
}

// ExplosionEmitter creates a manual-burst explosion at (x, y)
func ExplosionEmitter(x, y float64, chars string) *Emitter {
	if chars == "" {
		chars = FadeExplosion
	}
	e := NewEmitter()
	e.X, e.Y = x, y
	e.SpawnRate = 0
	e.Spread = 2 * math.Pi
	e.Direction = 0
	e.SpeedMin, e.SpeedMax = 15, 40
	e.LifetimeMin, e.LifetimeMax = 0.3, 0.8
	e.Char = []rune(chars)[0]
	e.CharSequence = []rune(chars)
	e.GravityScale = 0.5
	e.Drag = 0.92
	e.BurstCount = 80
	return e
}

// FountainEmitter sprays particles upward from (x, y)
func FountainEmitter(x, y float64, chars string) *Emitter {
	if chars == "" {
		chars = FadeSparkle
	}
	e := NewEmitter()
	e.X, e.Y = x, y
	e.SpawnRate = 30
	e.Spread = 0.4
	e.Direction = -math.Pi / 2
	e.SpeedMin, e.SpeedMax = 15, 25
	e.LifetimeMin, e.LifetimeMax = 1, 2
	e.Char = []rune(chars)[0]
	e.CharSequence = []rune(chars)
	return e
}

// FireEmitter creates rising flames at (x, y). Negative gravity scale
// makes the particles buoyant.
func FireEmitter(x, y float64, chars string) *Emitter {
	if chars == "" {
		chars = FadeFire
	}
	e := NewEmitter()
	e.X, e.Y = x, y
	e.SpawnRate = 40
	e.Spread = 0.6
	e.Direction = -math.Pi / 2
	e.SpeedMin, e.SpeedMax = 8, 15
	e.LifetimeMin, e.LifetimeMax = 0.3, 0.8
	e.Char = []rune(chars)[0]
	e.CharSequence = []rune(chars)
	e.GravityScale = -0.5
	e.Drag = 0.95
	return e
}

// SmokeEmitter creates slowly rising smoke at (x, y)
func SmokeEmitter(x, y float64, chars string) *Emitter {
	if chars == "" {
		chars = FadeSmoke
	}
	e := NewEmitter()
	e.X, e.Y = x, y
	e.SpawnRate = 15
	e.Spread = 0.8
	e.Direction = -math.Pi / 2
	e.SpeedMin, e.SpeedMax = 2, 5
	e.LifetimeMin, e.LifetimeMax = 1.5, 3
	e.Char = []rune(chars)[0]
	e.CharSequence = []rune(chars)
	e.GravityScale = -0.2
	e.Drag = 0.96
	return e
}

// RainEmitter drops nearly vertical rain from a single point above the
// screen. WeatherRain spreads drops across the full width and is
// usually the better choice.
func RainEmitter(width int, spawnRate float64, chars string) *Emitter {
	if chars == "" {
		chars = "|:"
	}
	e := NewEmitter()
	e.X, e.Y = float64(width)/2, -1
	e.SpawnRate = spawnRate
	e.Spread = 0.1
	e.Direction = math.Pi / 2
	e.SpeedMin, e.SpeedMax = 20, 35
	e.LifetimeMin, e.LifetimeMax = 2, 4
	e.Char = []rune(chars)[0]
	e.CharSequence = []rune(chars)
	e.GravityScale = 0.5
	e.Drag = 0.99
	return e
}

// SnowEmitter drops slow flakes from a single point above the screen
func SnowEmitter(width int, spawnRate float64, chars string) *Emitter {
	if chars == "" {
		chars = "*+."
	}
	e := NewEmitter()
	e.X, e.Y = float64(width)/2, -1
	e.SpawnRate = spawnRate
	e.Spread = 0.3
	e.Direction = math.Pi / 2
	e.SpeedMin, e.SpeedMax = 3, 8
	e.LifetimeMin, e.LifetimeMax = 5, 10
	e.Char = []rune(chars)[0]
	e.CharSequence = []rune(chars)
	e.GravityScale = 0.1
	e.Drag = 0.95
	return e
}
