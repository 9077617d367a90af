package system

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/milk9111/bugrun/common"
	"github.com/milk9111/bugrun/obj"
	"github.com/milk9111/bugrun/render"
	"golang.org/x/image/colornames"
)

const (
	hudMargin = 8
	hudY      = 40
	titleY    = 120
	hintY     = 160
	endHintY  = 470
)

// winSlotsX are the three sprite columns on the win screen: companion,
// player, companion.
var winSlotsX = [3]float64{151, 202, 253}

// Texts are the fixed lines drawn on the non-game screens.
type Texts struct {
	StartTitle string
	StartHint  string
	WinTitle   string
	WinHint    string
	OverTitle  string
	OverHint   string
}

// Theme is everything the renderer draws that is not game state.
type Theme struct {
	Background color.Color
	Text       color.Color
	Outline    color.Color
	Texts      Texts
	// Companions flank the player on the win screen.
	Companions [2]string
}

func DefaultTheme() Theme {
	return Theme{
		Background: colornames.White,
		Text:       colornames.White,
		Outline:    colornames.Black,
		Texts: Texts{
			StartTitle: "Choose your character",
			StartHint:  "Left / Right to choose, Enter to start",
			WinTitle:   "You win!",
			WinHint:    "Press Enter to play again",
			OverTitle:  "Game over",
			OverHint:   "Press Enter to try again",
		},
		Companions: [2]string{"char-princess-girl", "char-pink-girl"},
	}
}

// Renderer repaints the whole surface from State each frame. It only reads
// the state.
type Renderer struct {
	State *GameState
	Theme Theme
}

func (r *Renderer) Render(s render.Surface) {
	s.Fill(r.Theme.Background)

	switch m := r.State.Mode(); m {
	case ModeGame:
		r.renderGame(s)
	case ModeStart:
		r.renderStart(s)
	case ModeWin:
		r.renderWin(s)
	case ModeOver:
		r.renderOver(s)
	default:
		panic(fmt.Sprintf("system: render: unknown mode %d", int(m)))
	}
}

func (r *Renderer) renderGame(s render.Surface) {
	gs := r.State
	if lvl := gs.CurrentLevel(); lvl != nil {
		if lvl.Board != nil {
			lvl.Board.Render(s)
		}
		for _, e := range lvl.Enemies {
			e.Render(s)
		}
	}
	gs.Player.Render(s)

	w, _ := s.Size()
	r.text(s, "Lives: "+strconv.Itoa(gs.Lives), hudMargin, hudY, render.FontBody, render.AlignStart)
	r.text(s, "Level: "+strconv.Itoa(gs.Lvl+1), float64(w-hudMargin), hudY, render.FontBody, render.AlignEnd)
}

func (r *Renderer) renderStart(s render.Surface) {
	sel := r.State.Selector
	sel.Render(s)
	for i, ch := range sel.Characters() {
		s.DrawSprite(ch.Sprite, obj.SlotX(i), obj.SlotY())
	}
	r.title(s, r.Theme.Texts.StartTitle, titleY)
	r.hint(s, r.Theme.Texts.StartHint, hintY)
}

func (r *Renderer) renderWin(s render.Surface) {
	sprites := [3]string{r.Theme.Companions[0], r.State.Player.Sprite(), r.Theme.Companions[1]}
	for i, id := range sprites {
		s.DrawSprite(id, winSlotsX[i], obj.SlotY())
	}
	r.title(s, r.Theme.Texts.WinTitle, titleY)
	r.hint(s, r.Theme.Texts.WinHint, endHintY)
}

func (r *Renderer) renderOver(s render.Surface) {
	_, h := s.Size()
	r.title(s, r.Theme.Texts.OverTitle, float64(h)/2)
	r.hint(s, r.Theme.Texts.OverHint, float64(h)/2+hintY-titleY)
}

func (r *Renderer) title(s render.Surface, text string, y float64) {
	r.text(s, text, centerX(s), y, render.FontTitle, render.AlignCenter)
}

func (r *Renderer) hint(s render.Surface, text string, y float64) {
	r.text(s, text, centerX(s), y, render.FontBody, render.AlignCenter)
}

func (r *Renderer) text(s render.Surface, text string, x, y float64, font render.Font, align render.Align) {
	s.DrawText(text, x, y, render.TextStyle{
		Font:    font,
		Align:   align,
		Color:   r.Theme.Text,
		Outline: r.Theme.Outline,
	})
}

func centerX(s render.Surface) float64 {
	w, _ := s.Size()
	if w <= 0 {
		w = common.CanvasWidth
	}
	return float64(w) / 2
}
