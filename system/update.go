package system

import (
	"errors"
	"fmt"
)

// ErrNoLevel is returned when the game is running but Lvl names no level.
var ErrNoLevel = errors.New("system: no current level")

// Update advances the active entities by dt seconds. Outside ModeGame it
// does nothing. Enemies update in slice order, then the player once.
func Update(gs *GameState, dt float64) error {
	if gs.Mode() != ModeGame {
		return nil
	}
	lvl := gs.CurrentLevel()
	if lvl == nil {
		return fmt.Errorf("%w: lvl %d of %d", ErrNoLevel, gs.Lvl, len(gs.Levels))
	}
	for _, e := range lvl.Enemies {
		e.Update(dt)
	}
	gs.Player.Update()
	return nil
}
