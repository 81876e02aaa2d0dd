package engine

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/time/rate"

	"github.com/bella-project/bella/audio"
	"github.com/bella-project/bella/config"
	"github.com/bella-project/bella/input"
	"github.com/bella-project/bella/render"
	"github.com/bella-project/bella/scene"
	"github.com/bella-project/bella/status"
	"github.com/bella-project/bella/window"
)

// App owns the terminal surface, the frame pacer and one or more
// worlds. Each world carries its own latch and scene registry; the app
// merges all registered scenes into one frame in scene ID order.
type App struct {
	cfg          config.Config
	timeProvider TimeProvider
	worlds       []*worldRuntime

	screen tcell.Screen
	mode   render.ColorMode
	buffer *render.Buffer
	raster *render.Rasterizer
	window *window.Service

	limiter *rate.Limiter
	quit    atomic.Bool

	status *status.Registry
	audio  *audio.Manager

	statFrames *atomic.Int64
	statDelta  *status.AtomicFloat
}

// worldRuntime ties a world to the per-world singletons the app feeds
type worldRuntime struct {
	world  *World
	latch  *input.Latch
	scenes *scene.Registry
}

// NewApp creates an app from a validated configuration
func NewApp(cfg config.Config) *App {
	reg := status.NewRegistry()
	return &App{
		cfg:          cfg,
		timeProvider: NewMonotonicTimeProvider(),
		limiter:      rate.NewLimiter(rate.Limit(cfg.TargetFPS), 1),
		status:       reg,
		audio:        audio.NewManager(),
		statFrames:   reg.Ints.Get("frame.count"),
		statDelta:    reg.Floats.Get("frame.delta_ms"),
	}
}

// Status exposes the app metrics registry
func (a *App) Status() *status.Registry {
	return a.status
}

// Audio exposes the audio manager
func (a *App) Audio() *audio.Manager {
	return a.audio
}

// Quit asks the run loop to exit after the current frame
func (a *App) Quit() {
	a.quit.Store(true)
}

// WorldBuilder registers systems on one world with chained calls
type WorldBuilder struct {
	rt *worldRuntime
}

// NewWorld creates a world wired into the app's frame loop. The time
// system and the latch system are pre-registered so every StageUpdate
// system observes a ticked clock and a latched input state.
func (a *App) NewWorld() *WorldBuilder {
	w := NewWorld()
	latch := input.NewLatch()
	scenes := scene.NewRegistry()

	virtual := NewVirtualClock()
	virtual.SetMaxDelta(a.cfg.MaxDelta())
	virtual.SetRelativeSpeed(a.cfg.RelativeSpeed)

	AddResource(w.Resources, &TimeResource{})
	AddResource(w.Resources, &WindowResource{})
	AddResource(w.Resources, latch)
	AddResource(w.Resources, scenes)
	AddResource(w.Resources, virtual)
	AddResource(w.Resources, a.cfg)
	AddResource(w.Resources, a.status)
	AddResource(w.Resources, a.audio)

	wall := &RealClock{}
	w.AddSystem(StageFirst, func(w *World) {
		now := a.timeProvider.Now()
		virtual.Advance(wall.Tick(now))

		tr := MustGetResource[*TimeResource](w.Resources)
		tr.RealTime = now
		tr.DeltaTime = virtual.Delta()
		tr.DeltaSeconds = virtual.DeltaSeconds()
		tr.GameTime = virtual.Elapsed()
		tr.FrameNumber++
		a.statDelta.Set(tr.DeltaSeconds * 1000)
	})
	w.AddSystem(StagePreUpdate, func(w *World) {
		latch.LatchFrame()
	})

	rt := &worldRuntime{world: w, latch: latch, scenes: scenes}
	a.worlds = append(a.worlds, rt)
	return &WorldBuilder{rt: rt}
}

// World returns the underlying world for direct entity and resource
// access outside the schedules
func (b *WorldBuilder) World() *World {
	return b.rt.world
}

// OnStart registers a system that runs once, on the first frame
func (b *WorldBuilder) OnStart(fn SystemFunc) *WorldBuilder {
	b.rt.world.AddSystem(StageStart, fn)
	return b
}

// OnFirst registers a system in the stage right after the clock tick
func (b *WorldBuilder) OnFirst(fn SystemFunc) *WorldBuilder {
	b.rt.world.AddSystem(StageFirst, fn)
	return b
}

// OnPreUpdate registers a system running after input is latched
func (b *WorldBuilder) OnPreUpdate(fn SystemFunc) *WorldBuilder {
	b.rt.world.AddSystem(StagePreUpdate, fn)
	return b
}

// OnUpdate registers a per-frame logic system
func (b *WorldBuilder) OnUpdate(fn SystemFunc) *WorldBuilder {
	b.rt.world.AddSystem(StageUpdate, fn)
	return b
}

// OnDraw registers a system that emits scene commands. Scenes are reset
// before the frame runs, so draw systems re-emit their full content
// every frame.
func (b *WorldBuilder) OnDraw(fn SystemFunc) *WorldBuilder {
	b.rt.world.AddSystem(StageDraw, fn)
	return b
}

// OnLast registers an end-of-frame system
func (b *WorldBuilder) OnLast(fn SystemFunc) *WorldBuilder {
	b.rt.world.AddSystem(StageLast, fn)
	return b
}

// Run opens the terminal and drives the frame loop until Quit or a
// close request from the terminal
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	a.start(screen)
	defer a.shutdown()

	ctx := context.Background()
	for !a.quit.Load() {
		if err := a.limiter.Wait(ctx); err != nil {
			return err
		}
		a.frame()
	}
	return nil
}

// start wires the surface-dependent pieces once a screen exists
func (a *App) start(screen tcell.Screen) {
	a.screen = screen
	a.mode = a.resolveColorMode(screen)

	w, h := screen.Size()
	if a.cfg.Width > 0 {
		w = a.cfg.Width
	}
	if a.cfg.Height > 0 {
		h = a.cfg.Height
	}
	a.buffer = render.NewBuffer(w, h)
	a.raster = render.NewRasterizer(a.buffer)

	a.window = window.NewService(screen, a.status)
	for _, rt := range a.worlds {
		a.window.AttachLatch(rt.latch)
	}
	a.applySize(w, h)
	a.window.Start()

	if a.cfg.Audio {
		if err := a.audio.Initialize(); err != nil {
			log.Printf("app: audio unavailable: %v", err)
		}
	}
}

func (a *App) shutdown() {
	a.window.Stop()
	a.audio.Cleanup()
}

// frame runs one full iteration: surface events, world schedules, scene
// merge, rasterization and flush
func (a *App) frame() {
	select {
	case <-a.window.Closed():
		a.quit.Store(true)
		return
	default:
	}

	select {
	case size := <-a.window.Resized():
		w, h := size.X, size.Y
		if a.cfg.Width > 0 {
			w = a.cfg.Width
		}
		if a.cfg.Height > 0 {
			h = a.cfg.Height
		}
		a.buffer.Resize(w, h)
		a.applySize(w, h)
	default:
	}

	for _, rt := range a.worlds {
		rt.scenes.ResetAll()
		rt.world.RunFrame()
	}

	a.buffer.Reset()
	for _, rt := range a.worlds {
		for _, sc := range rt.scenes.Ordered() {
			a.raster.DrawScene(sc)
		}
	}
	render.Flush(a.buffer, a.screen, a.mode)

	a.statFrames.Add(1)
}

// applySize propagates the surface size to every world
func (a *App) applySize(w, h int) {
	for _, rt := range a.worlds {
		wr := MustGetResource[*WindowResource](rt.world.Resources)
		wr.Width, wr.Height = w, h
		rt.scenes.SetResolution(float64(w), float64(h))
	}
}

func (a *App) resolveColorMode(screen tcell.Screen) render.ColorMode {
	switch a.cfg.ColorMode {
	case config.ColorTrueColor:
		return render.ColorTrueColor
	case config.Color256:
		return render.Color256
	default:
		return render.DetectColorMode(screen)
	}
}
