package terminal

import (
	"bytes"
	"io"
)

// Frame is the cell-accessible view of one rendered frame. Get must
// return a blank rune for out-of-range coordinates.
type Frame interface {
	Width() int
	Height() int
	Get(x, y int) rune
}

// Renderer emits the minimal ANSI output that transforms the cells
// currently on screen into a new frame. It remembers a snapshot of the
// last rendered frame and diffs against it on every call after the
// first.
type Renderer struct {
	out io.Writer

	// Snapshot of the last rendered frame, row-major
	last      []rune
	lastW     int
	lastH     int
	forceFull bool

	buf bytes.Buffer // reused between renders
}

// NewRenderer creates a renderer writing to out. The first Render is
// always a full redraw.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:       out,
		forceFull: true,
	}
}

// ForceRedraw makes the next Render emit the full frame instead of a diff.
func (r *Renderer) ForceRedraw() {
	r.forceFull = true
}

// Render writes the frame to the output stream and returns the composed
// sequence. A write error is fatal to the host; nothing is retried.
func (r *Renderer) Render(f Frame) (string, error) {
	w, h := f.Width(), f.Height()
	r.buf.Reset()

	if r.forceFull || r.last == nil || w != r.lastW || h != r.lastH {
		r.renderFull(f, w, h)
		r.forceFull = false
	} else {
		r.renderDiff(f, w, h)
	}

	r.snapshot(f, w, h)

	out := r.buf.String()
	if _, err := io.WriteString(r.out, out); err != nil {
		return out, err
	}
	return out, nil
}

// renderFull emits cursor home followed by the complete frame text
func (r *Renderer) renderFull(f Frame, w, h int) {
	r.buf.Write(csiHome)
	for y := 0; y < h; y++ {
		if y > 0 {
			r.buf.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			r.buf.WriteRune(f.Get(x, y))
		}
	}
}

// renderDiff emits only changed cells, coalescing runs on the same row
// where the cursor has naturally advanced
func (r *Renderer) renderDiff(f Frame, w, h int) {
	lastX, lastY := -2, -2
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			ch := f.Get(x, y)
			if ch == r.last[row+x] {
				continue
			}
			if y == lastY && x == lastX+1 {
				r.buf.WriteRune(ch)
			} else {
				writeCursorPos(&r.buf, x, y)
				r.buf.WriteRune(ch)
			}
			lastX, lastY = x, y
		}
	}
}

// snapshot stores a full copy of the rendered frame so the next diff is
// computed against what is actually on screen
func (r *Renderer) snapshot(f Frame, w, h int) {
	size := w * h
	if cap(r.last) < size {
		r.last = make([]rune, size)
	} else {
		r.last = r.last[:size]
	}
	r.lastW, r.lastH = w, h
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			r.last[row+x] = f.Get(x, y)
		}
	}
}
