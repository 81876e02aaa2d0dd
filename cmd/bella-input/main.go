// Input probe: renders the latch state of the current frame. Keys light
// up on their down transition and fade over a short tail, the mouse
// cursor is tracked, and clicks leave fading markers. Escape quits.
package main

import (
	"fmt"
	"os"

	"github.com/bella-project/bella/config"
	"github.com/bella-project/bella/core"
	"github.com/bella-project/bella/engine"
	"github.com/bella-project/bella/input"
	"github.com/bella-project/bella/scene"
)

const fadeSeconds = 0.6

type marker struct {
	pos core.Point
	age float64
}

func main() {
	cfg := config.Default()
	cfg.Title = "bella input probe"

	app := engine.NewApp(cfg)
	w := app.NewWorld()

	keyAges := make(map[input.Key]float64)
	var markers []marker
	var lastTap input.Key

	w.OnUpdate(func(world *engine.World) {
		tr := engine.MustGetResource[*engine.TimeResource](world.Resources)
		latch := engine.MustGetResource[*input.Latch](world.Resources)

		if latch.IsKeyDown(input.KeyEscape) {
			app.Quit()
			return
		}

		for k := input.KeyA; k <= input.KeyZ; k++ {
			if latch.IsKeyDown(k) {
				keyAges[k] = 0
				lastTap = k
			}
		}
		for k, age := range keyAges {
			age += tr.DeltaSeconds
			if age > fadeSeconds {
				delete(keyAges, k)
				continue
			}
			keyAges[k] = age
		}

		if latch.IsButtonDown(input.ButtonLeft) {
			if pos, ok := latch.CursorPosition(); ok {
				markers = append(markers, marker{pos: pos})
			}
		}
		live := markers[:0]
		for _, m := range markers {
			m.age += tr.DeltaSeconds
			if m.age <= fadeSeconds {
				live = append(live, m)
			}
		}
		markers = live
	})

	w.OnDraw(func(world *engine.World) {
		scenes := engine.MustGetResource[*scene.Registry](world.Resources)
		latch := engine.MustGetResource[*input.Latch](world.Resources)

		sc := scenes.NewScene("probe")

		// Keyboard row: a..z as boxes lighting up when tapped
		for k := input.KeyA; k <= input.KeyZ; k++ {
			col := int(k-input.KeyA) * 3
			brush := scene.Solid(core.Color{R: 40, G: 40, B: 40})
			if age, ok := keyAges[k]; ok {
				heat := uint8(255 * (1 - age/fadeSeconds))
				brush = scene.Solid(core.Color{R: heat, G: heat / 2})
			}
			sc.FillRoundedRect(brush, core.Vec2{X: 2, Y: 1}, 0, scene.TranslateXY(float64(col), 2))
			sc.FillText(k.String(), scene.Solid(core.ColorWhite), scene.TranslateXY(float64(col), 4))
		}

		for _, m := range markers {
			heat := uint8(255 * (1 - m.age/fadeSeconds))
			sc.FillCircle(scene.Solid(core.Color{G: heat}), 1.5,
				scene.TranslateXY(float64(m.pos.X), float64(m.pos.Y)))
		}

		if pos, ok := latch.CursorPosition(); ok {
			sc.FillText("+", scene.Solid(core.ColorCyan),
				scene.TranslateXY(float64(pos.X), float64(pos.Y)))
		}

		if lastTap != input.KeyUnknown {
			sc.FillText(fmt.Sprintf("last key: %s", lastTap), scene.Solid(core.ColorWhite),
				scene.TranslateXY(0, 0))
		}
	})

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}
