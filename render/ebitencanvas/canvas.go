// Package ebitencanvas draws render.Surface calls onto an Ebitengine image.
package ebitencanvas

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/bugrun/render"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// SpriteSource resolves sprite ids to loaded images.
type SpriteSource interface {
	Get(id string) *ebiten.Image
}

// FontSet holds the faces used by DrawText.
type FontSet struct {
	Title text.Face
	Body  text.Face
}

// LoadFonts builds the title (Go Bold) and body (Go Regular) faces.
func LoadFonts(titleSize, bodySize float64) (*FontSet, error) {
	boldSrc, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitencanvas: load bold font: %w", err)
	}
	regularSrc, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitencanvas: load regular font: %w", err)
	}
	return &FontSet{
		Title: &text.GoTextFace{Source: boldSrc, Size: titleSize},
		Body:  &text.GoTextFace{Source: regularSrc, Size: bodySize},
	}, nil
}

func (f *FontSet) face(font render.Font) text.Face {
	if font == render.FontTitle {
		return f.Title
	}
	return f.Body
}

const outlineWidth = 2

var _ render.Surface = (*Canvas)(nil)

// Canvas is the game's offscreen drawing surface.
type Canvas struct {
	img     *ebiten.Image
	sprites SpriteSource
	fonts   *FontSet
	missing map[string]bool
}

// NewCanvas allocates a w x h offscreen image.
func NewCanvas(w, h int, sprites SpriteSource, fonts *FontSet) *Canvas {
	return &Canvas{
		img:     ebiten.NewImage(w, h),
		sprites: sprites,
		fonts:   fonts,
		missing: make(map[string]bool),
	}
}

// Image returns the backing image so the host can present it.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Fill(col color.Color) {
	c.img.Fill(col)
}

func (c *Canvas) DrawSprite(id string, x, y float64) {
	var img *ebiten.Image
	if c.sprites != nil {
		img = c.sprites.Get(id)
	}
	if img == nil {
		if !c.missing[id] {
			c.missing[id] = true
			log.Printf("ebitencanvas: sprite %q is not loaded", id)
		}
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	c.img.DrawImage(img, op)
}

func (c *Canvas) DrawText(s string, x, y float64, style render.TextStyle) {
	if c.fonts == nil || s == "" {
		return
	}
	face := c.fonts.face(style.Font)
	if style.Outline != nil {
		for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			c.drawText(s, x+d[0]*outlineWidth, y+d[1]*outlineWidth, face, style.Align, style.Outline)
		}
	}
	col := style.Color
	if col == nil {
		col = color.White
	}
	c.drawText(s, x, y, face, style.Align, col)
}

func (c *Canvas) drawText(s string, x, y float64, face text.Face, align render.Align, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	switch align {
	case render.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case render.AlignEnd:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}
	text.Draw(c.img, s, face, op)
}
