package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bugrun/common"
	"github.com/milk9111/bugrun/render"
)

// playerSpriteOffsetY lifts the character so its feet sit inside the tile.
const playerSpriteOffsetY = 10

// Player steps one tile per input. Movement is not time-based: Move queues
// a step and Update applies it.
type Player struct {
	sprite string
	col    int
	row    int

	startCol, startRow int
	cols, rows         int
	// Inset shrinks the hitbox horizontally on both sides.
	Inset float64

	pending Direction
}

// NewPlayer places a player at (col, row) on a cols x rows board.
func NewPlayer(sprite string, col, row, cols, rows int) *Player {
	return &Player{
		sprite:   sprite,
		col:      col,
		row:      row,
		startCol: col,
		startRow: row,
		cols:     cols,
		rows:     rows,
	}
}

// Move queues a step for the next Update. A later call in the same frame
// replaces the earlier one.
func (p *Player) Move(d Direction) {
	p.pending = d
}

// Update applies the queued step, staying on the board.
func (p *Player) Update() {
	switch p.pending {
	case DirLeft:
		if p.col > 0 {
			p.col--
		}
	case DirRight:
		if p.col < p.cols-1 {
			p.col++
		}
	case DirUp:
		if p.row > 0 {
			p.row--
		}
	case DirDown:
		if p.row < p.rows-1 {
			p.row++
		}
	}
	p.pending = DirNone
}

func (p *Player) Render(s render.Surface) {
	s.DrawSprite(p.sprite, common.ColX(p.col), common.RowY(p.row)-playerSpriteOffsetY)
}

func (p *Player) Sprite() string { return p.sprite }

func (p *Player) SetSprite(sprite string) { p.sprite = sprite }

func (p *Player) Col() int { return p.col }

func (p *Player) Row() int { return p.row }

func (p *Player) Bounds() cp.BB {
	x := common.ColX(p.col)
	top := common.RowY(p.row)
	return cp.BB{L: x + p.Inset, B: top + 1, R: x + common.ColWidth - p.Inset, T: top + common.RowHeight - 1}
}

// Reset returns the player to the start tile and drops any queued step.
func (p *Player) Reset() {
	p.col = p.startCol
	p.row = p.startRow
	p.pending = DirNone
}
