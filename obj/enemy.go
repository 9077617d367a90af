package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bugrun/common"
	"github.com/milk9111/bugrun/render"
)

const (
	// enemySpriteOffsetY lifts the bug sprite so it sits on its lane.
	enemySpriteOffsetY = 20
	defaultEnemySprite = "enemy-bug"
)

// SpeedFunc picks a new speed (pixels per second) for an enemy on row.
type SpeedFunc func(row int) float64

// Enemy crosses its lane left to right and wraps around at the edge.
type Enemy struct {
	X      float64
	Row    int
	Speed  float64
	Sprite string
	// Inset shrinks the hitbox horizontally on both sides.
	Inset float64

	startX     float64
	startSpeed float64
	respawn    SpeedFunc
}

func NewEnemy(x float64, row int, speed float64, respawn SpeedFunc) *Enemy {
	return &Enemy{
		X:          x,
		Row:        row,
		Speed:      speed,
		Sprite:     defaultEnemySprite,
		startX:     x,
		startSpeed: speed,
		respawn:    respawn,
	}
}

// Update moves the enemy by dt seconds of travel. Once fully off the right
// edge it re-enters from the left with a freshly rolled speed.
func (e *Enemy) Update(dt float64) {
	e.X += e.Speed * dt
	if e.X > common.CanvasWidth {
		e.X = -common.SpriteWidth
		if e.respawn != nil {
			e.Speed = e.respawn(e.Row)
		}
	}
}

func (e *Enemy) Render(s render.Surface) {
	s.DrawSprite(e.Sprite, e.X, common.RowY(e.Row)-enemySpriteOffsetY)
}

// Bounds is the hitbox in tile space: the lane's height, shrunk by one
// pixel so neighbouring lanes never touch.
func (e *Enemy) Bounds() cp.BB {
	top := common.RowY(e.Row)
	return cp.BB{L: e.X + e.Inset, B: top + 1, R: e.X + common.ColWidth - e.Inset, T: top + common.RowHeight - 1}
}

// Reset puts the enemy back where it was created.
func (e *Enemy) Reset() {
	e.X = e.startX
	e.Speed = e.startSpeed
}
