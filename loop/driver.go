// Package loop drives the per-frame update and render passes.
package loop

import (
	"errors"
	"time"

	"github.com/milk9111/bugrun/render"
)

var (
	ErrNotInitialized     = errors.New("loop: driver not initialized")
	ErrAlreadyInitialized = errors.New("loop: driver already initialized")
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so deltas are not affected by wall clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Updater advances the simulation by dt seconds.
type Updater interface {
	Update(dt float64) error
}

// Renderer repaints the surface from the current state.
type Renderer interface {
	Render(s render.Surface)
}

// Driver owns the time of the last frame and runs one Update then one
// Render per Tick. The host decides when Tick runs; the driver never
// schedules itself.
type Driver struct {
	clock    Clock
	updater  Updater
	renderer Renderer
	surface  render.Surface

	last    time.Time
	frames  uint64
	visible bool
	started bool
}

func NewDriver(clock Clock, updater Updater, renderer Renderer, surface render.Surface) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{
		clock:    clock,
		updater:  updater,
		renderer: renderer,
		surface:  surface,
	}
}

// Initialize starts the clock, makes the surface visible, resets the game
// through reset and runs the first frame.
func (d *Driver) Initialize(reset func()) error {
	if d.started {
		return ErrAlreadyInitialized
	}
	d.last = d.clock.Now()
	d.visible = true
	d.started = true
	if reset != nil {
		reset()
	}
	return d.Tick()
}

// Tick runs one frame. dt is the unclamped time since the previous frame,
// in seconds. An Update error aborts the frame before Render and leaves the
// clock where it was.
func (d *Driver) Tick() error {
	if !d.started {
		return ErrNotInitialized
	}
	now := d.clock.Now()
	dt := now.Sub(d.last).Seconds()

	if err := d.updater.Update(dt); err != nil {
		return err
	}
	d.renderer.Render(d.surface)

	d.last = now
	d.frames++
	return nil
}

// Resync moves the clock to now without running a frame.
func (d *Driver) Resync() {
	if !d.started {
		return
	}
	d.last = d.clock.Now()
}

// Started reports whether Initialize has run.
func (d *Driver) Started() bool {
	return d.started
}

// Visible reports whether the surface should be presented.
func (d *Driver) Visible() bool {
	return d.visible
}

// Frames returns the number of completed frames.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// LastTick returns the time of the last completed frame.
func (d *Driver) LastTick() time.Time {
	return d.last
}
