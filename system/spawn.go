package system

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/milk9111/bugrun/levels"
	"github.com/milk9111/bugrun/obj"
	"github.com/milk9111/bugrun/prefabs"
)

// speedScriptTimeout bounds one speed roll so a runaway script cannot stall
// a frame.
const speedScriptTimeout = 20 * time.Millisecond

type speedRoller struct {
	script *prefabs.SpeedScript
	spread float64
	step   float64
	rng    *rand.Rand
}

func (r *speedRoller) roll() float64 {
	if r.rng != nil {
		return r.rng.Float64()
	}
	return rand.Float64()
}

// speedFunc returns the respawn speed picker for a lane with base speed on
// level lvl. Script errors fall back to the base speed.
func (r *speedRoller) speedFunc(base float64, lvl int) obj.SpeedFunc {
	if r == nil || r.script == nil {
		return nil
	}
	return func(row int) float64 {
		ctx, cancel := context.WithTimeout(context.Background(), speedScriptTimeout)
		defer cancel()
		v, err := r.script.Eval(ctx, prefabs.SpeedInput{
			Base:   base,
			Spread: r.spread,
			Step:   r.step,
			Level:  lvl,
			Roll:   r.roll(),
		})
		if err != nil || v <= 0 {
			log.Printf("system: speed roll for row %d: v=%v err=%v", row, v, err)
			return base
		}
		return v
	}
}

func spawnEnemies(layout *levels.Layout, lvl int, spec *prefabs.EnemySpec, roller *speedRoller) []Enemy {
	enemies := make([]Enemy, 0, len(layout.Lanes))
	for _, lane := range layout.Lanes {
		e := obj.NewEnemy(lane.X, lane.Row, lane.Speed, roller.speedFunc(lane.Speed, lvl))
		if spec.Sprite != "" {
			e.Sprite = spec.Sprite
		}
		e.Inset = spec.HitboxInset
		enemies = append(enemies, e)
	}
	return enemies
}
