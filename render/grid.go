package render

import (
	"strings"
)

// Grid is the contract for external drawables composed onto a canvas:
// a fixed-size grid of single-width characters delivered as
// newline-delimited text, exactly Width columns by Height rows. The
// canvas treats the content as opaque and never inspects how it was
// produced.
type Grid interface {
	Width() int
	Height() int
	String() string
}

// gridRows splits a grid's rendered content into rows. A grid whose
// output does not match its declared shape yields nil, letting the
// caller skip it for the frame instead of aborting a live session.
func gridRows(g Grid) [][]rune {
	lines := strings.Split(g.String(), "\n")
	if len(lines) != g.Height() {
		return nil
	}
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		r := []rune(line)
		if len(r) != g.Width() {
			return nil
		}
		rows[i] = r
	}
	return rows
}
