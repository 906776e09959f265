// Particle sandbox: drives a TOML-described scene, or a built-in
// default (fountain + smoke) when no scene file is given.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/cinder/config"
	"github.com/lixenwraith/cinder/particle"
	"github.com/lixenwraith/cinder/render"
	"github.com/lixenwraith/cinder/terminal"
)

var (
	sceneFlag    = flag.String("scene", "", "Path to a TOML scene file")
	durationFlag = flag.Duration("duration", 20*time.Second, "Run time before exit")
	rainFlag     = flag.Bool("rain", false, "Overlay the full-width rain system")
	snowFlag     = flag.Bool("snow", false, "Overlay the full-width snow system")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\nparticle-sandbox crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	width, height := terminal.Size()
	fps := 30.0
	var emitters []*particle.Emitter
	gravity := 0.0
	maxParticles := 0

	if *sceneFlag != "" {
		scene, err := config.Load(*sceneFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		width, height = scene.Width, scene.Height
		fps = scene.FPS
		gravity = scene.Gravity
		maxParticles = scene.MaxParticles
		for _, spec := range scene.Emitters {
			emitters = append(emitters, spec.Build())
		}
	} else {
		emitters = append(emitters,
			particle.FountainEmitter(float64(width)/2, float64(height)-2, ""),
			particle.SmokeEmitter(float64(width)/4, float64(height)-2, ""),
		)
	}

	canvas := render.NewCanvas(width, height, fps, os.Stdout)
	engine := particle.NewEngine(canvas)
	if gravity != 0 {
		engine.Gravity = gravity
	}
	if maxParticles > 0 {
		engine.MaxParticles = maxParticles
	}
	for _, e := range emitters {
		engine.AddEmitter(e)
	}

	var rain *particle.WeatherRain
	var snow *particle.WeatherSnow
	if *rainFlag {
		rain = particle.NewWeatherRain(width, height, 0.5, "")
	}
	if *snowFlag {
		snow = particle.NewWeatherSnow(width, height, 0.2, "")
	}

	if err := canvas.Start(true); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start canvas: %v\n", err)
		os.Exit(1)
	}
	defer canvas.Stop()

	dt := canvas.FrameTime().Seconds()
	deadline := time.Now().Add(*durationFlag)

	for time.Now().Before(deadline) {
		select {
		case <-sigCh:
			return
		default:
		}

		if rain != nil {
			engine.AddAll(rain.Update(dt))
		}
		if snow != nil {
			engine.AddAll(snow.Update(dt))
		}

		canvas.Clear(render.Blank)
		engine.Update(dt)
		engine.Render()
		canvas.DrawText(1, height-1, fmt.Sprintf("particles: %4d", engine.Count()))

		if err := canvas.Commit(); err != nil {
			return
		}
		canvas.WaitFrame()
	}
}
