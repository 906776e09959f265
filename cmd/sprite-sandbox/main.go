// Sprite sandbox: eased motion tweens, AnimateValue and a wipe
// transition between two composed scenes.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/cinder/render"
	"github.com/lixenwraith/cinder/terminal"
)

var easingFlag = flag.String("easing", "ease_out_bounce", "Easing for the motion tween")

var rocketFrames = []string{
	" ^ \n/|\\\n###",
	" ^ \n/|\\\n##*",
	" ^ \n/|\\\n#*#",
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\nsprite-sandbox crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	width, height := terminal.Size()
	canvas := render.NewCanvas(width, height, 30, os.Stdout)

	sprite := render.NewSprite(rocketFrames, 2, float64(height)/2)
	sprite.FrameDelay = 4
	motion := sprite.MoveTo(float64(width-6), float64(height)/2, 3*time.Second, *easingFlag)

	if err := canvas.Start(true); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start canvas: %v\n", err)
		os.Exit(1)
	}
	defer canvas.Stop()

	motion.Start()
	for !motion.Complete {
		select {
		case <-sigCh:
			return
		default:
		}

		canvas.Clear(render.Blank)

		// Banner slides in independently of the sprite tween
		bannerX := canvas.AnimateValue(-20, 2, 1500*time.Millisecond, "ease_out_cubic", 0)
		canvas.DrawText(int(bannerX), 1, "cinder sprite demo")

		motion.Update()
		sprite.Update()
		sprite.Draw(canvas, ' ')

		if err := canvas.Commit(); err != nil {
			return
		}
		canvas.WaitFrame()
	}

	// Capture the final scene, then wipe to a closing card
	from := render.NewBuffer(width, height)
	from.CopyFrom(canvas.Back())

	to := render.NewBuffer(width, height)
	msg := "done - ctrl-c to exit"
	for i, ch := range msg {
		to.Set(width/2-len(msg)/2+i, height/2, ch)
	}

	dir, err := render.ParseDirection("right")
	if err != nil {
		panic(err)
	}
	wipe := render.NewWipeTransition(1200*time.Millisecond, "ease_in_out", dir)
	wipe.Start()
	for {
		select {
		case <-sigCh:
			return
		default:
		}
		done := wipe.Update()
		wipe.Apply(canvas, from, to)
		if err := canvas.Commit(); err != nil {
			return
		}
		canvas.WaitFrame()
		if done {
			break
		}
	}

	// Hold the card until interrupted
	<-sigCh
}
