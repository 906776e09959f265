// Fireworks sandbox: rate-limited launches with burst explosions,
// optional synthesized audio cues.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cinder/particle"
	"github.com/lixenwraith/cinder/render"
	"github.com/lixenwraith/cinder/terminal"
)

const logDir = "logs"

var (
	durationFlag = flag.Duration("duration", 30*time.Second, "Run time before exit")
	soundFlag    = flag.Bool("sound", false, "Play synthesized launch/boom cues")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/")
)

func setupLogging(enabled bool) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.Create(filepath.Join(logDir, "fireworks-sandbox.log"))
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}

type audio struct {
	ready bool
}

func newAudio(enabled bool) *audio {
	if !enabled {
		return &audio{}
	}
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio init failed, continuing silent: %v", err)
		return &audio{}
	}
	return &audio{ready: true}
}

// tone plays a short sine cue; launch ~1200Hz, boom ~180Hz
func (a *audio) tone(freq float64, d time.Duration) {
	if !a.ready {
		return
	}
	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (a *audio) close() {
	if a.ready {
		speaker.Close()
	}
}

// shell is a rising rocket that explodes at its apex
type shell struct {
	x, y float64
	vy   float64
	fuse float64
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\nfireworks-sandbox crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()
	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	snd := newAudio(*soundFlag)
	defer snd.close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	width, height := terminal.Size()
	canvas := render.NewCanvas(width, height, 30, os.Stdout)
	engine := particle.NewEngine(canvas)

	if err := canvas.Start(true); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start canvas: %v\n", err)
		os.Exit(1)
	}
	defer canvas.Stop()

	sequences := []string{
		particle.FadeSparkle,
		particle.FadeStars,
		particle.FadeExplosion,
	}

	var shells []shell
	nextLaunch := 0.0
	dt := canvas.FrameTime().Seconds()
	deadline := time.Now().Add(*durationFlag)

	for time.Now().Before(deadline) {
		select {
		case <-sigCh:
			return
		default:
		}

		// Launch cadence
		nextLaunch -= dt
		if nextLaunch <= 0 {
			nextLaunch = 0.6 + rand.Float64()*1.2
			shells = append(shells, shell{
				x:    float64(width)*0.2 + rand.Float64()*float64(width)*0.6,
				y:    float64(height) - 1,
				vy:   -(float64(height)*0.55 + rand.Float64()*float64(height)*0.25),
				fuse: 0.9 + rand.Float64()*0.5,
			})
			snd.tone(1200, 40*time.Millisecond)
		}

		// Rise shells, explode spent ones
		kept := shells[:0]
		for _, s := range shells {
			s.y += s.vy * dt
			s.vy += 12 * dt // light gravity so shells arc believably
			s.fuse -= dt
			if s.fuse <= 0 || s.y < float64(height)/4 {
				chars := sequences[rand.Intn(len(sequences))]
				engine.AddAll(particle.FireworkEmitter(s.x, s.y, chars).Burst(0))
				snd.tone(180, 90*time.Millisecond)
				log.Printf("burst at (%.1f, %.1f)", s.x, s.y)
				continue
			}
			kept = append(kept, s)
		}
		shells = kept

		canvas.Clear(render.Blank)
		engine.Update(dt)
		engine.Render()
		for _, s := range shells {
			canvas.Set(int(s.x), int(s.y), '|')
		}
		canvas.DrawText(1, height-1, fmt.Sprintf("particles: %4d  ctrl-c to quit", engine.Count()))

		if err := canvas.Commit(); err != nil {
			return
		}
		canvas.WaitFrame()
	}
}
