package render

import "image/color"

// Font selects one of the canvas typefaces.
type Font int

const (
	FontBody Font = iota
	FontTitle
)

// Align is the horizontal anchor of a text line relative to its x.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// TextStyle describes how DrawText paints a line. A nil Outline draws no
// stroke.
type TextStyle struct {
	Font    Font
	Align   Align
	Color   color.Color
	Outline color.Color
}

// Surface is the immediate-mode drawing target handed to every render call.
type Surface interface {
	Size() (w, h int)
	// Fill paints the whole surface with c.
	Fill(c color.Color)
	// DrawSprite draws the sprite registered under id with its top-left
	// corner at (x, y).
	DrawSprite(id string, x, y float64)
	DrawText(text string, x, y float64, style TextStyle)
}
