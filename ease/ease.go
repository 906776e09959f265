// Package ease provides the time-remapping curves shared by tweens and
// transitions. All functions map t in [0,1] with f(0)=0 and f(1)=1;
// elastic output transiently leaves [0,1] while it overshoots.
package ease

import (
	"math"
)

// Func remaps normalized time
type Func func(t float64) float64

// Linear applies no easing, constant speed
func Linear(t float64) float64 {
	return t
}

// InQuad: slow start, accelerating
func InQuad(t float64) float64 {
	return t * t
}

// OutQuad: fast start, decelerating
func OutQuad(t float64) float64 {
	return t * (2 - t)
}

// InOutQuad: slow start and end
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// InCubic: slower start than quadratic
func InCubic(t float64) float64 {
	return t * t * t
}

// OutCubic: smoother deceleration
func OutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// InOutCubic: smoother transitions
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// OutElastic: springy overshoot, exact 0 and 1 at the endpoints
func OutElastic(t float64) float64 {
	if t == 0 {
		return 0
	}
	if t == 1 {
		return 1
	}
	const c4 = (2 * math.Pi) / 3
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

// OutBounce: four-segment decaying bounce
func OutBounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// registry maps the canonical easing names to their functions
var registry = map[string]Func{
	"linear":            Linear,
	"ease_in":           InQuad,
	"ease_out":          OutQuad,
	"ease_in_out":       InOutQuad,
	"ease_in_cubic":     InCubic,
	"ease_out_cubic":    OutCubic,
	"ease_in_out_cubic": InOutCubic,
	"ease_out_elastic":  OutElastic,
	"ease_out_bounce":   OutBounce,
}

// ByName returns the named easing function, falling back to Linear for
// unknown names.
func ByName(name string) Func {
	if f, ok := registry[name]; ok {
		return f
	}
	return Linear
}

// Lookup returns the named easing function and whether the name is
// registered, for callers that want to validate names up front.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]
	if !ok {
		return Linear, false
	}
	return f, true
}

// Names returns the registered easing names
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
