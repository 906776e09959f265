package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/cinder/ease"
	"github.com/lixenwraith/cinder/vmath"
)

// DefaultDensityRamp orders characters from visually emptiest to
// fullest, approximating greyscale for fade effects
const DefaultDensityRamp = " .:;+=xX$#"

// Transition tracks the progress of a one-shot full-frame effect
// between two captured buffers. The buffers themselves are passed in
// at apply time, never owned.
type Transition struct {
	duration time.Duration
	easing   ease.Func
	progress float64

	startTime time.Time

	now func() time.Time // test hook
}

func newTransition(duration time.Duration, easing string) Transition {
	return Transition{
		duration: duration,
		easing:   ease.ByName(easing),
		now:      time.Now,
	}
}

// Start begins the transition clock
func (t *Transition) Start() {
	t.startTime = t.now()
	t.progress = 0
}

// Update advances progress from the wall clock, clamped to [0,1].
// Returns true once complete. A transition that was never started
// reports complete.
func (t *Transition) Update() bool {
	if t.startTime.IsZero() {
		return true
	}
	elapsed := t.now().Sub(t.startTime)
	if t.duration <= 0 {
		t.progress = 1
	} else {
		t.progress = vmath.Clamp(float64(elapsed)/float64(t.duration), 0, 1)
	}
	return t.progress >= 1
}

// Progress returns the raw progress in [0,1]
func (t *Transition) Progress() float64 { return t.progress }

// EasedProgress returns the eased progress
func (t *Transition) EasedProgress() float64 { return t.easing(t.progress) }

// FadeTransition cross-fades two frames through a density ramp:
// each differing cell fades the "from" character down the ramp before
// the halfway mark, then fades the "to" character up it.
type FadeTransition struct {
	Transition
	ramp []rune
}

// NewFadeTransition creates a fade using the given density ramp; an
// empty ramp selects DefaultDensityRamp.
func NewFadeTransition(duration time.Duration, easing string, ramp string) *FadeTransition {
	if ramp == "" {
		ramp = DefaultDensityRamp
	}
	return &FadeTransition{
		Transition: newTransition(duration, easing),
		ramp:       []rune(ramp),
	}
}

// rampIndex locates ch on the ramp, treating unknown characters as
// fully dense
func (f *FadeTransition) rampIndex(ch rune) int {
	for i, r := range f.ramp {
		if r == ch {
			return i
		}
	}
	return len(f.ramp) - 1
}

// Apply writes the blended frame to the canvas back buffer
func (f *FadeTransition) Apply(c *Canvas, from, to *Buffer) {
	t := f.EasedProgress()
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			fromCh := from.Get(x, y)
			toCh := to.Get(x, y)

			switch {
			case fromCh == toCh:
				c.Set(x, y, fromCh)
			case t < 0.5:
				idx := int(float64(f.rampIndex(fromCh)) * (1 - t*2))
				c.Set(x, y, f.ramp[vmath.ClampInt(idx, 0, len(f.ramp)-1)])
			default:
				idx := int(float64(f.rampIndex(toCh)) * ((t - 0.5) * 2))
				c.Set(x, y, f.ramp[vmath.ClampInt(idx, 0, len(f.ramp)-1)])
			}
		}
	}
}

// Direction selects which edge a wipe reveals from
type Direction int

const (
	WipeRight Direction = iota
	WipeLeft
	WipeDown
	WipeUp
)

// ParseDirection resolves a direction name. Unknown names are a
// construction-time error: a silent no-op wipe is indistinguishable
// from one that has not progressed.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(name) {
	case "right":
		return WipeRight, nil
	case "left":
		return WipeLeft, nil
	case "down":
		return WipeDown, nil
	case "up":
		return WipeUp, nil
	}
	return 0, fmt.Errorf("unknown wipe direction %q", name)
}

// WipeTransition reveals the "to" frame on one side of a moving
// threshold and keeps "from" on the other
type WipeTransition struct {
	Transition
	dir Direction
}

// NewWipeTransition creates a wipe toward the given direction
func NewWipeTransition(duration time.Duration, easing string, dir Direction) *WipeTransition {
	return &WipeTransition{
		Transition: newTransition(duration, easing),
		dir:        dir,
	}
}

// Apply writes the partially revealed frame to the canvas back buffer
func (w *WipeTransition) Apply(c *Canvas, from, to *Buffer) {
	t := w.EasedProgress()
	width, height := c.Width(), c.Height()

	revealed := func(x, y int) bool {
		switch w.dir {
		case WipeRight:
			return x < int(float64(width)*t)
		case WipeLeft:
			return x >= int(float64(width)*(1-t))
		case WipeDown:
			return y < int(float64(height)*t)
		default: // WipeUp
			return y >= int(float64(height)*(1-t))
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if revealed(x, y) {
				c.Set(x, y, to.Get(x, y))
			} else {
				c.Set(x, y, from.Get(x, y))
			}
		}
	}
}
