// Shooting gallery: targets drift across the screen as ECS entities,
// clicking one pops it and plays a tone. Demonstrates component stores,
// gradients, mouse input and audio. M mutes, Escape quits.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/bella-project/bella/config"
	"github.com/bella-project/bella/core"
	"github.com/bella-project/bella/engine"
	"github.com/bella-project/bella/input"
	"github.com/bella-project/bella/scene"
)

const (
	spawnEvery   = 1500 * time.Millisecond
	targetRadius = 2.0
)

type target struct {
	pos   core.Vec2
	speed float64
	hue   core.Color
}

func main() {
	cfg := config.Default()
	cfg.Title = "bella gallery"
	cfg.Audio = true

	app := engine.NewApp(cfg)
	w := app.NewWorld()

	var score int
	var sinceSpawn time.Duration

	w.OnUpdate(func(world *engine.World) {
		tr := engine.MustGetResource[*engine.TimeResource](world.Resources)
		latch := engine.MustGetResource[*input.Latch](world.Resources)
		win := engine.MustGetResource[*engine.WindowResource](world.Resources)
		targets := engine.GetStore[target](world)

		if latch.IsKeyDown(input.KeyEscape) {
			app.Quit()
			return
		}
		if latch.IsKeyDown(input.KeyM) {
			app.Audio().ToggleMute()
		}

		// Spawn on the left edge at a random height
		sinceSpawn += tr.DeltaTime
		if sinceSpawn >= spawnEvery {
			sinceSpawn = 0
			e := world.CreateEntity()
			targets.Set(e, target{
				pos:   core.Vec2{X: -targetRadius, Y: 2 + rand.Float64()*(float64(win.Height)-4)},
				speed: 6 + rand.Float64()*10,
				hue:   core.Color{R: uint8(rand.Intn(200) + 55), G: uint8(rand.Intn(200) + 55), B: 64},
			})
		}

		// Drift and cull
		var gone []core.Entity
		targets.Range(func(e core.Entity, t target) {
			t.pos.X += t.speed * tr.DeltaSeconds
			if t.pos.X > float64(win.Width)+targetRadius {
				gone = append(gone, e)
				return
			}
			targets.Set(e, t)
		})
		for _, e := range gone {
			world.DestroyEntity(e)
		}

		// Hits
		if latch.IsButtonDown(input.ButtonLeft) {
			if pos, ok := latch.CursorPosition(); ok {
				click := core.Vec2{X: float64(pos.X) + 0.5, Y: float64(pos.Y) + 0.5}
				var hit []core.Entity
				targets.Range(func(e core.Entity, t target) {
					if click.Sub(t.pos).Length() <= targetRadius+0.5 {
						hit = append(hit, e)
					}
				})
				for _, e := range hit {
					world.DestroyEntity(e)
					score++
					app.Audio().PlayTone(440+40*float64(score%8), 80*time.Millisecond)
				}
			}
		}
	})

	w.OnDraw(func(world *engine.World) {
		scenes := engine.MustGetResource[*scene.Registry](world.Resources)
		tr := engine.MustGetResource[*engine.TimeResource](world.Resources)
		targets := engine.GetStore[target](world)

		sc := scenes.NewScene("field")
		res := scenes.Resolution()

		bg := scene.LinearGradient(
			core.Vec2{}, core.Vec2{Y: res.Y},
			core.Color{B: 30}, core.Color{R: 25, B: 50},
		)
		sc.FillRoundedRect(bg, res, 0, scene.TranslateXY(res.X/2, res.Y/2))

		pulse := 0.5 + 0.5*math.Sin(tr.GameTime.Seconds()*4)
		targets.Range(func(_ core.Entity, t target) {
			rim := core.Color{
				R: uint8(float64(t.hue.R) * pulse),
				G: uint8(float64(t.hue.G) * pulse),
				B: t.hue.B,
			}
			tf := scene.TranslateXY(t.pos.X, t.pos.Y)
			sc.FillCircle(scene.Solid(t.hue), targetRadius, tf)
			sc.StrokeCircle(scene.NewStroke(1), scene.Solid(rim), targetRadius+1, tf)
		})

		hud := scenes.NewScene("hud")
		hud.FillText(fmt.Sprintf("score %d", score), scene.Solid(core.ColorWhite), scene.TranslateXY(1, 0))
		if app.Audio().IsMuted() {
			hud.FillText("muted", scene.Solid(core.ColorRed), scene.TranslateXY(res.X-6, 0))
		}
	})

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}
