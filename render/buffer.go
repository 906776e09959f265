package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Blank is the rune stored in empty cells
const Blank = ' '

// Buffer is a fixed-size 2D grid of single-width runes. Dimensions are
// immutable for the buffer's lifetime; out-of-range access is silently
// absorbed to keep per-cell loops branch-free during live animation.
type Buffer struct {
	width  int
	height int
	cells  []rune // row-major
}

// NewBuffer creates a buffer filled with blanks
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	b.Clear(Blank)
	return b
}

// FromString builds a buffer from a multi-line string, sized to the
// longest line. Short lines are padded with blanks.
func FromString(s string) *Buffer {
	lines := strings.Split(s, "\n")
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	b := NewBuffer(width, len(lines))
	for y, line := range lines {
		for x, ch := range []rune(line) {
			b.Set(x, y, ch)
		}
	}
	return b
}

// Width returns the column count
func (b *Buffer) Width() int { return b.width }

// Height returns the row count
func (b *Buffer) Height() int { return b.height }

// Set stores a rune at (x, y). Out-of-range writes are ignored. The
// zero rune and runes that do not occupy exactly one terminal column
// are stored as a blank, keeping the grid single-width by contract.
func (b *Buffer) Set(x, y int, ch rune) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	if ch == 0 || runewidth.RuneWidth(ch) != 1 {
		ch = Blank
	}
	b.cells[y*b.width+x] = ch
}

// Get returns the rune at (x, y), or a blank for out-of-range reads
func (b *Buffer) Get(x, y int) rune {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Blank
	}
	return b.cells[y*b.width+x]
}

// Clear resets every cell to fill
func (b *Buffer) Clear(fill rune) {
	if fill == 0 {
		fill = Blank
	}
	if len(b.cells) == 0 {
		return
	}
	// Exponential copy
	b.cells[0] = fill
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// CopyFrom copies the overlapping region from other, leaving cells
// outside it untouched
func (b *Buffer) CopyFrom(other *Buffer) {
	w := b.width
	if other.width < w {
		w = other.width
	}
	h := b.height
	if other.height < h {
		h = other.height
	}
	for y := 0; y < h; y++ {
		copy(b.cells[y*b.width:y*b.width+w], other.cells[y*other.width:y*other.width+w])
	}
}

// String joins rows with newlines, no trailing newline
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.cells[y*b.width+x])
		}
	}
	return sb.String()
}
