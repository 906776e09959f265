// Tcell sandbox: runs the particle engine against an offscreen canvas
// and presents frames through the tcell bridge, showing how a host
// embedded in a tcell application consumes the library without the raw
// renderer.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cinder/particle"
	"github.com/lixenwraith/cinder/render"
	"github.com/lixenwraith/cinder/terminal"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	width, height := screen.Size()

	// tcell owns the tty; the canvas renders into a discarded writer
	// and frames reach the screen through the bridge
	canvas := render.NewCanvas(width, height, 30, io.Discard)
	engine := particle.NewEngine(canvas)
	engine.AddEmitter(particle.FireEmitter(float64(width)/2, float64(height)-2, ""))

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(canvas.FrameTime())
	defer ticker.Stop()
	dt := canvas.FrameTime().Seconds()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			canvas.Clear(render.Blank)
			engine.Update(dt)
			engine.Render()
			canvas.DrawText(1, 0, "q to quit")

			terminal.Blit(screen, canvas.Back())
			screen.Show()
		}
	}
}
