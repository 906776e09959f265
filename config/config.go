// Package config loads declarative particle scene presets from TOML
// files for the sandbox commands.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/cinder/parameter"
	"github.com/lixenwraith/cinder/particle"
)

// Scene describes a particle playground: canvas shape, physics
// constants and a set of emitters.
type Scene struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	FPS          float64 `toml:"fps"`
	Gravity      float64 `toml:"gravity"`
	MaxParticles int     `toml:"max_particles"`

	Emitters []EmitterSpec `toml:"emitters"`
}

// EmitterSpec is the TOML shape of one emitter
type EmitterSpec struct {
	X            float64 `toml:"x"`
	Y            float64 `toml:"y"`
	SpawnRate    float64 `toml:"spawn_rate"`
	Spread       float64 `toml:"spread"`
	Direction    float64 `toml:"direction"`
	SpeedMin     float64 `toml:"speed_min"`
	SpeedMax     float64 `toml:"speed_max"`
	LifetimeMin  float64 `toml:"lifetime_min"`
	LifetimeMax  float64 `toml:"lifetime_max"`
	Char         string  `toml:"char"`
	CharSequence string  `toml:"char_sequence"`
	GravityScale float64 `toml:"gravity_scale"`
	Drag         float64 `toml:"drag"`
	Fade         bool    `toml:"fade"`
	BurstCount   int     `toml:"burst_count"`
}

// Load reads and validates a scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file %s: %w", path, err)
	}

	scene := &Scene{
		Width:        80,
		Height:       24,
		FPS:          30,
		Gravity:      parameter.DefaultGravity,
		MaxParticles: parameter.DefaultMaxParticles,
	}
	if err := toml.Unmarshal(data, scene); err != nil {
		return nil, fmt.Errorf("parsing scene file %s: %w", path, err)
	}

	if scene.Width <= 0 || scene.Height <= 0 {
		return nil, fmt.Errorf("scene %s: dimensions must be positive, got %dx%d", path, scene.Width, scene.Height)
	}
	if scene.FPS <= 0 {
		return nil, fmt.Errorf("scene %s: fps must be positive, got %v", path, scene.FPS)
	}
	for i, spec := range scene.Emitters {
		if spec.Drag < 0 || spec.Drag > 1 {
			return nil, fmt.Errorf("scene %s: emitter %d: drag must be in (0,1], got %v", path, i, spec.Drag)
		}
	}
	return scene, nil
}

// Build converts the spec into a live emitter, leaving unset fields at
// the emitter defaults.
func (s EmitterSpec) Build() *particle.Emitter {
	e := particle.NewEmitter()
	e.X, e.Y = s.X, s.Y
	if s.SpawnRate != 0 {
		e.SpawnRate = s.SpawnRate
	}
	if s.Spread != 0 {
		e.Spread = s.Spread
	}
	if s.Direction != 0 {
		e.Direction = s.Direction
	}
	if s.SpeedMin != 0 {
		e.SpeedMin = s.SpeedMin
	}
	if s.SpeedMax != 0 {
		e.SpeedMax = s.SpeedMax
	}
	if s.LifetimeMin != 0 {
		e.LifetimeMin = s.LifetimeMin
	}
	if s.LifetimeMax != 0 {
		e.LifetimeMax = s.LifetimeMax
	}
	if s.Char != "" {
		e.Char = []rune(s.Char)[0]
	}
	if s.CharSequence != "" {
		e.CharSequence = []rune(s.CharSequence)
	}
	if s.GravityScale != 0 {
		e.GravityScale = s.GravityScale
	}
	if s.Drag != 0 {
		e.Drag = s.Drag
	}
	e.Fade = s.Fade || s.CharSequence != ""
	e.BurstCount = s.BurstCount
	return e
}
