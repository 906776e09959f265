package parameter

// Particle engine defaults
const (
	// DefaultGravity is downward acceleration in cells per second squared
	DefaultGravity = 20.0

	// DefaultMaxParticles caps the pool; oldest particles are evicted first
	DefaultMaxParticles = 1000

	// DefaultBoundsMargin is the extra distance in cells beyond the canvas
	// edge before an out-of-bounds particle is killed
	DefaultBoundsMargin = 5.0
)

// Emitter defaults (applied by particle.NewEmitter)
const (
	// DefaultSpawnRate is particles per second
	DefaultSpawnRate = 10.0

	// DefaultSpeedMin/Max bound initial particle speed in cells per second
	DefaultSpeedMin = 5.0
	DefaultSpeedMax = 15.0

	// DefaultLifetimeMin/Max bound particle lifetime in seconds
	DefaultLifetimeMin = 0.5
	DefaultLifetimeMax = 2.0

	// DefaultDrag is per-update multiplicative velocity damping
	DefaultDrag = 0.98
)
