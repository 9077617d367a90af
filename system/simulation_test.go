package system

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/bugrun/common"
	"github.com/milk9111/bugrun/loop"
	"github.com/milk9111/bugrun/obj"
	"github.com/milk9111/bugrun/render/rendertest"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func TestDriverRunsSimulationAndRenderer(t *testing.T) {
	gs, err := NewGameState(embeddedConfig(t))
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	clock := &manualClock{now: time.Unix(100, 0)}
	rec := rendertest.NewRecorder(common.CanvasWidth, common.CanvasHeight)
	ctrl := &Controller{State: gs}
	d := loop.NewDriver(clock, &Simulation{State: gs}, &Renderer{State: gs, Theme: DefaultTheme()}, rec)

	if err := d.Initialize(gs.Reset); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if d.Frames() != 1 || gs.Mode() != ModeStart {
		t.Fatalf("expected one start frame, got frames=%d mode=%s", d.Frames(), gs.Mode())
	}
	if got := len(rec.Sprites()); got != 11 {
		t.Fatalf("start frame drew %d sprites", got)
	}

	ctrl.Apply(obj.Intent{Confirm: true})
	e := gs.CurrentLevel().Enemies[0].(*obj.Enemy)
	x0 := e.X

	rec.Reset()
	clock.now = clock.now.Add(500 * time.Millisecond)
	ctrl.Apply(obj.Intent{Move: obj.DirUp})
	if err := d.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if want := x0 + e.Speed*0.5; e.X != want {
		t.Fatalf("enemy moved to %v, want %v", e.X, want)
	}
	if gs.Player.Row() != 4 {
		t.Fatalf("queued step not applied in the same frame, row=%d", gs.Player.Row())
	}
	if texts := rec.Texts(); len(texts) != 2 || texts[0].Text != "Lives: 3" || texts[1].Text != "Level: 1" {
		t.Fatalf("unexpected HUD %+v", texts)
	}
}

func TestSimulationErrorStopsFrame(t *testing.T) {
	var log calls
	gs := newFakeState(&log, 1)
	gs.Lvl = 3
	clock := &manualClock{now: time.Unix(0, 0)}
	rec := rendertest.NewRecorder(common.CanvasWidth, common.CanvasHeight)
	d := loop.NewDriver(clock, &Simulation{State: gs}, &Renderer{State: gs, Theme: DefaultTheme()}, rec)

	err := d.Initialize(nil)
	if !errors.Is(err, ErrNoLevel) {
		t.Fatalf("expected ErrNoLevel, got %v", err)
	}
	if len(rec.Ops) != 0 || d.Frames() != 0 {
		t.Fatalf("render ran after a failed update")
	}
}
