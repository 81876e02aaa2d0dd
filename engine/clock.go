package engine

import "time"

// DefaultMaxDelta bounds a single virtual clock step. A stall longer than
// this (debugger breakpoint, OS suspend) is absorbed instead of being
// delivered to game systems as one huge step.
const DefaultMaxDelta = 250 * time.Millisecond

// DefaultWrapPeriod bounds ElapsedWrapped for overflow-safe accumulation
// in float-based animation code
const DefaultWrapPeriod = time.Hour

// RealClock tracks wall-clock time between ticks
// The zero value is ready to use; the first tick returns a zero delta
type RealClock struct {
	first   time.Time
	last    time.Time
	started bool
}

// Tick observes now and returns the duration since the previous tick.
// The first call records now as both first and last timestamp and
// returns zero. A now earlier than the previous tick (system clock
// adjustment) yields zero rather than a negative delta.
func (c *RealClock) Tick(now time.Time) time.Duration {
	if !c.started {
		c.first = now
		c.last = now
		c.started = true
		return 0
	}

	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	return delta
}

// FirstTick returns the timestamp of the first observed tick
// and false if the clock has never ticked
func (c *RealClock) FirstTick() (time.Time, bool) {
	return c.first, c.started
}

// LastTick returns the timestamp of the most recent tick
// and false if the clock has never ticked
func (c *RealClock) LastTick() (time.Time, bool) {
	return c.last, c.started
}

// VirtualClock converts raw real-time deltas into game-time deltas,
// subject to pause, speed scaling and a maximum step clamp
type VirtualClock struct {
	Clock

	maxDelta       time.Duration
	paused         bool
	relativeSpeed  float64
	effectiveSpeed float64
}

// NewVirtualClock creates a virtual clock running at real-time speed
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{
		Clock: Clock{
			wrapPeriod: DefaultWrapPeriod,
		},
		maxDelta:       DefaultMaxDelta,
		relativeSpeed:  1.0,
		effectiveSpeed: 1.0,
	}
}

// Advance applies a raw real-time delta to the virtual clock.
// The raw delta is clamped to the max step bound (excess is silently
// dropped, never accumulated), then scaled by the effective speed.
// A speed of exactly 1.0 passes the clamped delta through unscaled so
// real-speed play carries no floating-point drift.
func (v *VirtualClock) Advance(raw time.Duration) {
	if raw > v.maxDelta {
		raw = v.maxDelta
	}
	if raw < 0 {
		raw = 0
	}

	if v.paused {
		v.effectiveSpeed = 0
	} else {
		v.effectiveSpeed = v.relativeSpeed
	}

	delta := raw
	if v.effectiveSpeed != 1.0 {
		delta = time.Duration(float64(raw) * v.effectiveSpeed)
	}

	v.Clock.advance(delta)
}

// SetPaused stops or resumes virtual time advancement.
// While paused the emitted delta is zero regardless of relative speed.
func (v *VirtualClock) SetPaused(paused bool) {
	v.paused = paused
}

// Paused returns the pause state
func (v *VirtualClock) Paused() bool {
	return v.paused
}

// SetRelativeSpeed sets the speed multiplier applied to raw deltas.
// Negative values are clamped to zero; virtual time never runs backwards.
func (v *VirtualClock) SetRelativeSpeed(speed float64) {
	if speed < 0 {
		speed = 0
	}
	v.relativeSpeed = speed
}

// RelativeSpeed returns the configured speed multiplier
func (v *VirtualClock) RelativeSpeed() float64 {
	return v.relativeSpeed
}

// EffectiveSpeed returns the multiplier applied on the last Advance:
// zero while paused, the relative speed otherwise
func (v *VirtualClock) EffectiveSpeed() float64 {
	return v.effectiveSpeed
}

// SetMaxDelta sets the upper bound on a single accepted step
func (v *VirtualClock) SetMaxDelta(d time.Duration) {
	v.maxDelta = d
}

// MaxDelta returns the step clamp bound
func (v *VirtualClock) MaxDelta() time.Duration {
	return v.maxDelta
}

// Clock holds the per-frame delta and its cached float conversion.
// The cache is updated together with the delta, so DeltaSeconds always
// equals Delta().Seconds() without per-call conversion cost.
type Clock struct {
	delta        time.Duration
	deltaSeconds float64
	elapsed      time.Duration
	wrapPeriod   time.Duration
}

func (c *Clock) advance(delta time.Duration) {
	c.delta = delta
	c.deltaSeconds = delta.Seconds()
	c.elapsed += delta
}

// Delta returns the duration advanced on the last tick
func (c *Clock) Delta() time.Duration {
	return c.delta
}

// DeltaSeconds returns the last delta as float seconds
func (c *Clock) DeltaSeconds() float64 {
	return c.deltaSeconds
}

// Elapsed returns total advanced time since clock creation
func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// ElapsedWrapped returns elapsed time modulo the wrap period, for
// animation code accumulating into float32 without precision loss
func (c *Clock) ElapsedWrapped() time.Duration {
	if c.wrapPeriod <= 0 {
		return c.elapsed
	}
	return c.elapsed % c.wrapPeriod
}

// SetWrapPeriod sets the modulus used by ElapsedWrapped
func (c *Clock) SetWrapPeriod(d time.Duration) {
	c.wrapPeriod = d
}
