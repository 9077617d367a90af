package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bugrun/assets"
	"github.com/milk9111/bugrun/common"
	"github.com/milk9111/bugrun/render"
	"github.com/milk9111/bugrun/render/ebitencanvas"
	"golang.org/x/image/colornames"
)

const (
	labelHeight = 24
	cellPadding = 8
)

// viewer shows every sprite in a grid with the selected one highlighted.
type viewer struct {
	registry *assets.Registry
	canvas   *ebitencanvas.Canvas
	ids      []string
	cols     int
	selected int
	ready    bool
}

func (v *viewer) cellSize() (float64, float64) {
	return common.SpriteWidth + cellPadding, common.SpriteHeight + labelHeight + cellPadding
}

func (v *viewer) Update() error {
	if err := v.registry.Poll(); err != nil {
		return err
	}
	if !v.ready || len(v.ids) == 0 {
		return nil
	}

	n := len(v.ids)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.selected = (v.selected + 1) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.selected = (v.selected - 1 + n) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.selected = (v.selected + v.cols) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.selected = (v.selected - v.cols%n + n) % n
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	v.paint()
	return nil
}

func (v *viewer) paint() {
	v.canvas.Fill(colornames.Darkslategray)
	cw, ch := v.cellSize()
	label := render.TextStyle{Font: render.FontBody, Align: render.AlignCenter, Color: colornames.White}
	for i, id := range v.ids {
		x := float64(i%v.cols)*cw + cellPadding/2
		y := float64(i/v.cols)*ch + cellPadding/2
		v.canvas.DrawSprite(id, x, y)
		style := label
		if i == v.selected {
			style.Color = colornames.Gold
			style.Outline = colornames.Black
		}
		v.canvas.DrawText(id, x+common.SpriteWidth/2, y+common.SpriteHeight, style)
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if !v.ready {
		return
	}
	screen.DrawImage(v.canvas.Image(), nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.canvas.Size()
}

func main() {
	dir := flag.String("dir", "", "sprite directory on disk (default: embedded sprites)")
	cols := flag.Int("cols", 5, "sprites per row")
	flag.Parse()

	var fsys fs.FS = assets.Images()
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}
	if *cols <= 0 {
		*cols = 1
	}

	registry := assets.NewRegistry(fsys)
	ids, err := registry.IDs()
	if err != nil {
		log.Fatal(err)
	}
	if len(ids) == 0 {
		log.Fatal("sprites: no sprites found")
	}

	fonts, err := ebitencanvas.LoadFonts(14, 12)
	if err != nil {
		log.Fatal(err)
	}

	v := &viewer{registry: registry, ids: ids, cols: *cols}
	rows := (len(ids) + v.cols - 1) / v.cols
	cw, ch := v.cellSize()
	w, h := int(cw)*v.cols, int(ch)*rows
	v.canvas = ebitencanvas.NewCanvas(w, h, registry, fonts)

	registry.OnReady(func() {
		v.ready = true
		log.Printf("sprites: %d loaded", len(ids))
	})
	registry.Load(ids...)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Sprites")
	if err := ebiten.RunGame(v); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
