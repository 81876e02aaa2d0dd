// Bouncing ball demo: one world, one scene, the time resource driving
// motion. Space pauses, arrow up/down change speed, Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bella-project/bella/config"
	"github.com/bella-project/bella/core"
	"github.com/bella-project/bella/engine"
	"github.com/bella-project/bella/input"
	"github.com/bella-project/bella/scene"
)

type ball struct {
	pos    core.Vec2
	vel    core.Vec2
	radius float64
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	app := engine.NewApp(cfg)
	w := app.NewWorld()

	b := ball{
		pos:    core.Vec2{X: 10, Y: 5},
		vel:    core.Vec2{X: 14, Y: 6},
		radius: 3,
	}

	w.OnUpdate(func(world *engine.World) {
		tr := engine.MustGetResource[*engine.TimeResource](world.Resources)
		latch := engine.MustGetResource[*input.Latch](world.Resources)
		win := engine.MustGetResource[*engine.WindowResource](world.Resources)
		clock := engine.MustGetResource[*engine.VirtualClock](world.Resources)

		if latch.IsKeyDown(input.KeyEscape) {
			app.Quit()
			return
		}
		if latch.IsKeyDown(input.KeySpace) {
			clock.SetPaused(!clock.Paused())
		}
		if latch.IsKeyDown(input.KeyUp) {
			clock.SetRelativeSpeed(clock.RelativeSpeed() + 0.25)
		}
		if latch.IsKeyDown(input.KeyDown) {
			clock.SetRelativeSpeed(clock.RelativeSpeed() - 0.25)
		}

		b.pos = b.pos.Add(b.vel.Scale(tr.DeltaSeconds))

		res := win.Resolution()
		if b.pos.X < b.radius && b.vel.X < 0 || b.pos.X > res.X-b.radius && b.vel.X > 0 {
			b.vel.X = -b.vel.X
		}
		if b.pos.Y < b.radius && b.vel.Y < 0 || b.pos.Y > res.Y-b.radius && b.vel.Y > 0 {
			b.vel.Y = -b.vel.Y
		}
	})

	w.OnDraw(func(world *engine.World) {
		scenes := engine.MustGetResource[*scene.Registry](world.Resources)
		clock := engine.MustGetResource[*engine.VirtualClock](world.Resources)

		sc := scenes.NewScene("main")
		res := scenes.Resolution()

		bg := scene.LinearGradient(
			core.Vec2{}, core.Vec2{Y: res.Y},
			core.Color{R: 10, G: 10, B: 40},
			core.Color{R: 40, G: 10, B: 60},
		)
		sc.FillRoundedRect(bg, res, 0, scene.TranslateXY(res.X/2, res.Y/2))
		sc.FillCircle(scene.Solid(core.ColorYellow), b.radius, scene.TranslateXY(b.pos.X, b.pos.Y))

		label := "space: pause  esc: quit"
		if clock.Paused() {
			label = "paused"
		}
		sc.FillText(label, scene.Solid(core.ColorWhite), scene.TranslateXY(1, 0))
	})

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}
