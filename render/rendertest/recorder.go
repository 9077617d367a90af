// Package rendertest provides a recording render.Surface for tests.
package rendertest

import (
	"image/color"

	"github.com/milk9111/bugrun/render"
)

type OpKind int

const (
	OpFill OpKind = iota
	OpSprite
	OpText
)

// Op is one recorded draw call.
type Op struct {
	Kind   OpKind
	Sprite string
	Text   string
	X, Y   float64
	Color  color.Color
	Style  render.TextStyle
}

var _ render.Surface = (*Recorder)(nil)

// Recorder implements render.Surface by appending every call to Ops.
type Recorder struct {
	W, H int
	Ops  []Op
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Fill(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c})
}

func (r *Recorder) DrawSprite(id string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSprite, Sprite: id, X: x, Y: y})
}

func (r *Recorder) DrawText(s string, x, y float64, style render.TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, X: x, Y: y, Style: style})
}

// Sprites returns the recorded sprite draws in call order.
func (r *Recorder) Sprites() []Op {
	return r.filter(OpSprite)
}

// Texts returns the recorded text draws in call order.
func (r *Recorder) Texts() []Op {
	return r.filter(OpText)
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = nil
}

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
