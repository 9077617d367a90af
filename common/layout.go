package common

// Canvas and tile geometry. Sprites are 101x171 with transparent padding on
// top, so a row's visible face starts RowHeight pixels below the previous one.
const (
	CanvasWidth  = 505
	CanvasHeight = 606

	ColWidth  = 101
	RowHeight = 83

	SpriteWidth  = 101
	SpriteHeight = 171
)

// ColX returns the left edge of a tile column.
func ColX(col int) float64 {
	return float64(col * ColWidth)
}

// RowY returns the top edge of a tile row.
func RowY(row int) float64 {
	return float64(row * RowHeight)
}
