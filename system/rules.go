package system

import "log"

// goalRow is the water row the player has to reach.
const goalRow = 0

// Resolve applies the frame's outcome after Update: a touching enemy costs
// a life, reaching the goal row advances the level.
func Resolve(gs *GameState) {
	if gs.Mode() != ModeGame {
		return
	}
	lvl := gs.CurrentLevel()
	if lvl == nil {
		return
	}

	pb := gs.Player.Bounds()
	for _, e := range lvl.Enemies {
		if pb.Intersects(e.Bounds()) {
			hit(gs)
			return
		}
	}

	if gs.Player.Row() == goalRow {
		advance(gs)
	}
}

func hit(gs *GameState) {
	gs.Lives--
	gs.Events.Push(Event{Kind: EventHit, Lvl: gs.Lvl, Lives: gs.Lives})
	if gs.Lives <= 0 {
		gs.Lives = 0
		gs.mode = ModeOver
		gs.Events.Push(Event{Kind: EventLost, Lvl: gs.Lvl})
		log.Printf("system: game over on level %d", gs.Lvl+1)
		return
	}
	gs.Player.Reset()
}

func advance(gs *GameState) {
	gs.Lvl++
	gs.Events.Push(Event{Kind: EventGoal, Lvl: gs.Lvl, Lives: gs.Lives})
	if gs.Lvl >= len(gs.Levels) {
		gs.mode = ModeWin
		gs.Events.Push(Event{Kind: EventWon, Lvl: gs.Lvl, Lives: gs.Lives})
		log.Printf("system: won with %d lives left", gs.Lives)
		return
	}
	gs.Player.Reset()
	gs.CurrentLevel().Reset()
}
