package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/bugrun/assets"
	"github.com/milk9111/bugrun/common"
	"github.com/milk9111/bugrun/input"
	"github.com/milk9111/bugrun/loop"
	"github.com/milk9111/bugrun/prefabs"
	"github.com/milk9111/bugrun/render/ebitencanvas"
	"github.com/milk9111/bugrun/system"
	"golang.design/x/clipboard"
)

const (
	defaultTitleSize = 36
	defaultBodySize  = 20
	effectsVolume    = 0.5
)

var eventSounds = map[system.EventKind]string{
	system.EventHit:  "hit",
	system.EventGoal: "goal",
	system.EventWon:  "win",
	system.EventLost: "lose",
}

// Options are the command line switches.
type Options struct {
	Debug bool
	Watch bool
	Lives int
	Level int
	Mode  string
	Mute  bool
}

type Game struct {
	opts      Options
	startMode system.Mode

	assets *assets.Registry
	canvas *ebitencanvas.Canvas
	driver *loop.Driver
	sounds *assets.SoundBank

	state    *system.GameState
	sim      *system.Simulation
	renderer *system.Renderer
	control  *system.Controller
	input    *input.Input

	watcher   *prefabs.Watcher
	clipboard bool

	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
	initErr error
}

func NewGame(opts Options) (*Game, error) {
	startMode := system.ModeStart
	if opts.Mode != "" {
		m, err := system.ParseMode(opts.Mode)
		if err != nil {
			return nil, err
		}
		startMode = m
	}

	w, err := loadWorld(opts)
	if err != nil {
		return nil, err
	}

	fonts, err := ebitencanvas.LoadFonts(sizeOr(w.spec.TitleSize, defaultTitleSize), sizeOr(w.spec.BodySize, defaultBodySize))
	if err != nil {
		return nil, err
	}

	registry := assets.NewRegistry(assets.Images())
	ids, err := registry.IDs()
	if err != nil {
		return nil, fmt.Errorf("list sprites: %w", err)
	}

	g := &Game{
		opts:      opts,
		startMode: startMode,
		assets:    registry,
		canvas:    ebitencanvas.NewCanvas(common.CanvasWidth, common.CanvasHeight, registry, fonts),
		sounds:    assets.NewSoundBank(effectsVolume),
		sim:       &system.Simulation{},
		renderer:  &system.Renderer{},
		control:   &system.Controller{},
		input:     input.New(),
	}
	g.applyWorld(w)
	g.driver = loop.NewDriver(nil, g.sim, g.renderer, g.canvas)
	g.pauseUI = NewPauseUI(g)
	g.sounds.SetMuted(opts.Mute)

	if opts.Debug {
		if err := clipboard.Init(); err != nil {
			log.Printf("game: clipboard unavailable: %v", err)
		} else {
			g.clipboard = true
		}
	}
	if opts.Watch {
		g.watcher = startWatcher()
	}

	registry.OnReady(func() {
		log.Printf("game: %d sprites loaded", len(ids))
		g.initErr = g.driver.Initialize(g.reset)
	})
	registry.Load(ids...)
	return g, nil
}

func sizeOr(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}

// startWatcher watches whichever override directories exist on disk.
func startWatcher() *prefabs.Watcher {
	var dirs []string
	for _, dir := range []string{prefabs.DiskDir, filepath.Join(prefabs.DiskDir, "scripts"), levelsDir} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		log.Printf("game: -watch: no prefab or level directories on disk")
		return nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("game: -watch: %v", err)
		return nil
	}
	log.Printf("game: watching %v", dirs)
	return w
}

func (g *Game) applyWorld(w *world) {
	g.state = w.state
	g.sim.State = w.state
	g.renderer.State = w.state
	g.renderer.Theme = w.theme
	g.control.State = w.state
}

// reset is the game's reset hook: back to the start screen, or to the mode
// requested on the command line.
func (g *Game) reset() {
	g.state.Reset()
	if g.startMode != system.ModeStart {
		if err := g.state.SetMode(g.startMode); err != nil {
			log.Printf("game: %v", err)
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	started := g.driver.Started()
	if err := g.assets.Poll(); err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	if g.initErr != nil {
		return g.initErr
	}
	// Still loading, or Poll just ran the first frame through Initialize.
	if !started {
		return nil
	}

	g.pollReload()

	in := g.input.Update()
	if in.Quit {
		return ebiten.Termination
	}
	if in.Copy {
		g.copyState()
	}
	if in.Pause {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.control.Apply(in)
	if err := g.driver.Tick(); err != nil {
		return err
	}
	g.playEvents()
	return nil
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if !paused {
		g.driver.Resync()
	}
}

func (g *Game) restart() {
	g.reset()
	g.state.Events.Drain()
	g.setPaused(false)
}

func (g *Game) playEvents() {
	for _, evt := range g.state.Events.Drain() {
		if g.opts.Debug {
			log.Printf("game: %s lvl=%d lives=%d", evt.Kind, evt.Lvl+1, evt.Lives)
		}
		if name, ok := eventSounds[evt.Kind]; ok {
			g.sounds.Play(name)
		}
	}
}

func (g *Game) copyState() {
	if !g.opts.Debug || !g.clipboard {
		return
	}
	summary := g.state.Summary()
	clipboard.Write(clipboard.FmtText, []byte(summary))
	log.Printf("game: copied %s", summary)
}

// pollReload rebuilds the world after prefab or level edits on disk. A
// broken edit is logged and the running world is kept.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("game: watcher: %v", err)
		}
	default:
	}

	changed := false
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			break
		}
		log.Printf("game: %s changed", name)
		changed = true
	}
	if !changed {
		return
	}

	w, err := loadWorld(g.opts)
	if err != nil {
		log.Printf("game: reload failed: %v", err)
		return
	}
	g.applyWorld(w)
	g.reset()
	g.driver.Resync()
	log.Printf("game: reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.driver.Visible() {
		ebitenutil.DebugPrint(screen, "Loading...")
		return
	}
	screen.DrawImage(g.canvas.Image(), nil)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  frames: %d\n%s", ebiten.ActualFPS(), g.driver.Frames(), g.state.Mode()), 4, common.CanvasHeight-36)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.CanvasWidth, common.CanvasHeight
}

// Close releases the file watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}
