package system

import "github.com/milk9111/bugrun/obj"

// Controller turns input intents into state transitions. It runs before the
// frame's Update so a queued step is applied in the same frame.
type Controller struct {
	State *GameState
}

func (c *Controller) Apply(in obj.Intent) {
	gs := c.State
	switch gs.Mode() {
	case ModeStart:
		switch in.Move {
		case obj.DirLeft:
			gs.Selector.Move(-1)
		case obj.DirRight:
			gs.Selector.Move(1)
		}
		if in.Confirm {
			c.start()
		}
	case ModeGame:
		if in.Move != obj.DirNone {
			gs.Player.Move(in.Move)
		}
	case ModeWin, ModeOver:
		if in.Confirm {
			gs.Reset()
		}
	}
}

func (c *Controller) start() {
	gs := c.State
	ch, ok := gs.Selector.Selected()
	if !ok {
		return
	}
	gs.Player.SetSprite(ch.Sprite)
	gs.Player.Reset()
	if l := gs.CurrentLevel(); l != nil {
		l.Reset()
	}
	gs.mode = ModeGame
	gs.Events.Push(Event{Kind: EventStarted, Lvl: gs.Lvl, Lives: gs.Lives})
}
