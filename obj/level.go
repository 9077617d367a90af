package obj

import (
	"github.com/milk9111/bugrun/common"
	"github.com/milk9111/bugrun/render"
)

// Board is a level's static background: one tile sprite per row, repeated
// across every column.
type Board struct {
	Rows []string
	Cols int
}

func NewBoard(rows []string, cols int) *Board {
	return &Board{Rows: rows, Cols: cols}
}

// Render draws rows top to bottom so lower tiles overlap the padding of the
// ones above.
func (b *Board) Render(s render.Surface) {
	for row, sprite := range b.Rows {
		for col := 0; col < b.Cols; col++ {
			s.DrawSprite(sprite, common.ColX(col), common.RowY(row))
		}
	}
}
