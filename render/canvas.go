package render

import (
	"io"
	"time"

	"github.com/lixenwraith/cinder/ease"
	"github.com/lixenwraith/cinder/terminal"
	"github.com/lixenwraith/cinder/vmath"
)

// Canvas is a double-buffered animation surface. Drawing operations
// write to the back buffer; Commit diff-renders it to the terminal and
// copies it into the front buffer. The host drives the loop:
//
//	c := render.NewCanvas(80, 24, 30, os.Stdout)
//	c.Start(true)
//	for running {
//		c.Clear(render.Blank)
//		// draw
//		c.Commit()
//		c.WaitFrame()
//	}
//	c.Stop()
//
// Single-writer between commits; concurrent use must be serialized by
// the host.
type Canvas struct {
	width  int
	height int

	fps       float64
	frameTime time.Duration

	front *Buffer // last shown
	back  *Buffer // work in progress

	renderer *terminal.Renderer
	session  *terminal.Session

	frameCount uint64
	startTime  time.Time
	lastFrame  time.Time
	running    bool

	// Clock hooks for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewCanvas creates a canvas rendering to out at the target frame rate
func NewCanvas(width, height int, fps float64, out io.Writer) *Canvas {
	if fps <= 0 {
		fps = 20
	}
	return &Canvas{
		width:     width,
		height:    height,
		fps:       fps,
		frameTime: time.Duration(float64(time.Second) / fps),
		front:     NewBuffer(width, height),
		back:      NewBuffer(width, height),
		renderer:  terminal.NewRenderer(out),
		session:   terminal.NewSession(out),
		now:       time.Now,
		sleep:     time.Sleep,
	}
}

// Width returns the canvas column count
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas row count
func (c *Canvas) Height() int { return c.height }

// FPS returns the target frame rate
func (c *Canvas) FPS() float64 { return c.fps }

// FrameTime returns the target frame interval
func (c *Canvas) FrameTime() time.Duration { return c.frameTime }

// FrameCount returns the number of committed frames since Start
func (c *Canvas) FrameCount() uint64 { return c.frameCount }

// Back exposes the work buffer for direct composition
func (c *Canvas) Back() *Buffer { return c.back }

// Front exposes the last committed buffer
func (c *Canvas) Front() *Buffer { return c.front }

// --- Drawing (back buffer only, never blocks) ---

// Set stores a rune at (x, y)
func (c *Canvas) Set(x, y int, ch rune) {
	c.back.Set(x, y, ch)
}

// Get returns the back-buffer rune at (x, y)
func (c *Canvas) Get(x, y int) rune {
	return c.back.Get(x, y)
}

// Clear resets the back buffer to fill
func (c *Canvas) Clear(fill rune) {
	c.back.Clear(fill)
}

// DrawText writes text left-to-right starting at (x, y)
func (c *Canvas) DrawText(x, y int, text string) {
	i := 0
	for _, ch := range text {
		c.back.Set(x+i, y, ch)
		i++
	}
}

// DrawRect draws a rectangle outline
func (c *Canvas) DrawRect(x, y, w, h int, ch rune) {
	for dx := 0; dx < w; dx++ {
		c.back.Set(x+dx, y, ch)
		c.back.Set(x+dx, y+h-1, ch)
	}
	for dy := 0; dy < h; dy++ {
		c.back.Set(x, y+dy, ch)
		c.back.Set(x+w-1, y+dy, ch)
	}
}

// FillRect fills a rectangle
func (c *Canvas) FillRect(x, y, w, h int, ch rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.back.Set(x+dx, y+dy, ch)
		}
	}
}

// DrawLine draws a line with Bresenham's algorithm
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, ch rune) {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		c.back.Set(x, y, ch)
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// Overlay composes an external grid onto the back buffer, skipping the
// transparent rune. A grid whose output does not match its declared
// shape is skipped for this frame only.
func (c *Canvas) Overlay(g Grid, x, y int, transparent rune) {
	rows := gridRows(g)
	for dy, row := range rows {
		for dx, ch := range row {
			if ch != transparent {
				c.back.Set(x+dx, y+dy, ch)
			}
		}
	}
}

// OverlayBuffer composes another buffer onto the back buffer without
// the grid round-trip
func (c *Canvas) OverlayBuffer(b *Buffer, x, y int, transparent rune) {
	for dy := 0; dy < b.Height(); dy++ {
		for dx := 0; dx < b.Width(); dx++ {
			ch := b.Get(dx, dy)
			if ch != transparent {
				c.back.Set(x+dx, y+dy, ch)
			}
		}
	}
}

// --- Lifecycle ---

// Start enters animation mode: alternate screen when requested, cursor
// hidden, screen cleared, frame counter and clocks reset. The next
// Commit is a full redraw. Best-effort signals, not verified
// transitions.
func (c *Canvas) Start(useAltScreen bool) error {
	c.running = true
	c.frameCount = 0
	c.startTime = c.now()
	c.lastFrame = c.startTime

	if err := c.session.Begin(useAltScreen); err != nil {
		return err
	}
	c.renderer.ForceRedraw()
	return nil
}

// Stop leaves animation mode, restoring cursor and primary screen.
// Safe to call in any order with Start.
func (c *Canvas) Stop() error {
	c.running = false
	return c.session.End()
}

// IsRunning reports whether Start has been called without a matching Stop
func (c *Canvas) IsRunning() bool { return c.running }

// Commit diff-renders the back buffer, copies it into the front buffer
// and advances the frame counter
func (c *Canvas) Commit() error {
	if _, err := c.renderer.Render(c.back); err != nil {
		return err
	}
	c.front.CopyFrom(c.back)
	c.frameCount++
	return nil
}

// ForceRedraw makes the next Commit repaint the full frame
func (c *Canvas) ForceRedraw() {
	c.renderer.ForceRedraw()
}

// WaitFrame sleeps the remainder of the frame interval. Drift
// correcting: a slow frame shortens the next sleep, but the sleep is
// never negative and lost time is never repaid by skipping sleeps.
func (c *Canvas) WaitFrame() {
	if c.lastFrame.IsZero() {
		c.lastFrame = c.now()
		return
	}
	elapsed := c.now().Sub(c.lastFrame)
	if d := c.frameTime - elapsed; d > 0 {
		c.sleep(d)
	}
	c.lastFrame = c.now()
}

// ElapsedTime returns the time since Start, zero if never started
func (c *Canvas) ElapsedTime() time.Duration {
	if c.startTime.IsZero() {
		return 0
	}
	return c.now().Sub(c.startTime)
}

// AnimateValue interpolates between start and end as a pure function
// of elapsed time: start before the delay, end once the duration has
// passed, the eased interpolation in between.
func (c *Canvas) AnimateValue(start, end float64, duration time.Duration, easing string, delay time.Duration) float64 {
	elapsed := c.ElapsedTime() - delay
	if elapsed < 0 {
		return start
	}
	if elapsed >= duration || duration <= 0 {
		return end
	}
	t := float64(elapsed) / float64(duration)
	return vmath.Lerp(start, end, ease.ByName(easing)(t))
}
