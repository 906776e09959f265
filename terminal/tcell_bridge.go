package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Blit copies a frame's runes onto a tcell screen, for hosts that embed
// an animation inside a tcell application instead of driving the raw
// renderer. The frame carries no color, so cells use the default style.
// The caller remains responsible for screen.Show.
func Blit(screen tcell.Screen, f Frame) {
	w, h := f.Width(), f.Height()
	sw, sh := screen.Size()
	if sw < w {
		w = sw
	}
	if sh < h {
		h = sh
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, y, f.Get(x, y), nil, tcell.StyleDefault)
		}
	}
}
