package obj

import (
	"github.com/milk9111/bugrun/common"
	"github.com/milk9111/bugrun/render"
)

const (
	selectorRow  = 3
	slotOffsetX  = 50
	slotOffsetY  = 20
	selectorTile = "grass-block"
	selectorMark = "selector"
)

// Character is a selectable player sprite.
type Character struct {
	Name   string
	Sprite string
}

// Selector is the character-choice screen: a strip of tiles with a
// highlight under the current choice.
type Selector struct {
	characters []Character
	cursor     int
	// Tile and Mark override the backdrop sprites when set.
	Tile string
	Mark string
}

func NewSelector(characters []Character) *Selector {
	return &Selector{
		characters: characters,
		Tile:       selectorTile,
		Mark:       selectorMark,
	}
}

// SlotX is the left edge of the i-th selection slot.
func SlotX(i int) float64 {
	return float64(i*common.ColWidth + slotOffsetX)
}

// SlotY is the top edge of every selection slot.
func SlotY() float64 {
	return float64(selectorRow*common.RowHeight - slotOffsetY)
}

func (s *Selector) Characters() []Character {
	return s.characters
}

// Move shifts the cursor by delta, wrapping at both ends.
func (s *Selector) Move(delta int) {
	n := len(s.characters)
	if n == 0 {
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// Selected returns the character under the cursor.
func (s *Selector) Selected() (Character, bool) {
	if len(s.characters) == 0 {
		return Character{}, false
	}
	return s.characters[s.cursor], true
}

func (s *Selector) Cursor() int {
	return s.cursor
}

// Reset moves the cursor back to the first character.
func (s *Selector) Reset() {
	s.cursor = 0
}

// Render draws the backdrop strip and the highlight; the characters
// themselves are drawn by the caller on top.
func (s *Selector) Render(surf render.Surface) {
	for i := range s.characters {
		surf.DrawSprite(s.Tile, SlotX(i), common.RowY(selectorRow))
	}
	if len(s.characters) > 0 {
		surf.DrawSprite(s.Mark, SlotX(s.cursor), SlotY())
	}
}
