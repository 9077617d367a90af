package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bugrun/common"
)

func main() {
	debug := flag.Bool("debug", false, "show FPS and copy a state summary with F2")
	watch := flag.Bool("watch", false, "reload prefabs and levels from disk when they change")
	lives := flag.Int("lives", 0, "starting lives (0 keeps game.yaml)")
	level := flag.Int("level", 0, "level to start on, 1-based (0 starts on the first)")
	mode := flag.String("mode", "", "jump to a mode once loaded: start, game, win or over")
	scale := flag.Float64("scale", 1, "window scale")
	mute := flag.Bool("mute", false, "disable sound effects")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		} else {
			log.Printf("main: -m: no monitors reported, using the primary")
		}
	}
	if *scale <= 0 {
		*scale = 1
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(common.CanvasWidth * *scale), int(common.CanvasHeight * *scale))
	ebiten.SetWindowTitle("bugrun")

	game, err := NewGame(Options{
		Debug: *debug,
		Watch: *watch,
		Lives: *lives,
		Level: *level,
		Mode:  *mode,
		Mute:  *mute,
	})
	if err != nil {
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
