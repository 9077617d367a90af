package system

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bugrun/obj"
	"github.com/milk9111/bugrun/render"
)

// Mode is the screen the game is on.
type Mode int

const (
	ModeStart Mode = iota
	ModeGame
	ModeWin
	ModeOver
)

func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeGame:
		return "game"
	case ModeWin:
		return "win"
	case ModeOver:
		return "over"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= ModeStart && m <= ModeOver
}

// ParseMode maps a mode name back to its Mode.
func ParseMode(s string) (Mode, error) {
	for m := ModeStart; m <= ModeOver; m++ {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("system: unknown mode %q", s)
}

// Drawable draws itself onto a surface.
type Drawable interface {
	Render(s render.Surface)
}

type Enemy interface {
	Drawable
	Update(dt float64)
	Bounds() cp.BB
	Reset()
}

// Player advances without dt: it moves one tile per queued step.
type Player interface {
	Drawable
	Update()
	Move(d obj.Direction)
	Sprite() string
	SetSprite(id string)
	Row() int
	Bounds() cp.BB
	Reset()
}

type Selector interface {
	Drawable
	Characters() []obj.Character
	Move(delta int)
	Selected() (obj.Character, bool)
	Reset()
}

// Level is a static board plus the enemies crossing it, in update order.
type Level struct {
	Name    string
	Board   Drawable
	Enemies []Enemy
}

// Reset puts every enemy back at its starting lane position.
func (l *Level) Reset() {
	for _, e := range l.Enemies {
		e.Reset()
	}
}

// GameState is the single owned record of game progress. It is passed by
// reference into Update and Render and mutated only on the game goroutine.
type GameState struct {
	mode Mode

	Lvl   int
	Lives int
	// MaxLives is what Reset restores Lives to.
	MaxLives int
	// StartLvl is the level Reset returns to, normally 0.
	StartLvl int

	Player   Player
	Levels   []*Level
	Selector Selector
	Events   EventQueue
}

func (gs *GameState) Mode() Mode {
	return gs.mode
}

// SetMode switches screens. Values outside the declared modes are rejected.
func (gs *GameState) SetMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("system: set mode: unknown mode %d", int(m))
	}
	gs.mode = m
	return nil
}

// Reset returns the game to the character select screen with full lives
// and every entity at its start position.
func (gs *GameState) Reset() {
	gs.mode = ModeStart
	gs.Lvl = gs.StartLvl
	if gs.Lvl < 0 || gs.Lvl >= len(gs.Levels) {
		gs.Lvl = 0
	}
	gs.Lives = gs.MaxLives
	if gs.Player != nil {
		gs.Player.Reset()
	}
	if gs.Selector != nil {
		gs.Selector.Reset()
	}
	for _, l := range gs.Levels {
		l.Reset()
	}
}

// CurrentLevel returns the level at Lvl, or nil when Lvl is out of range.
func (gs *GameState) CurrentLevel() *Level {
	if gs.Lvl < 0 || gs.Lvl >= len(gs.Levels) {
		return nil
	}
	return gs.Levels[gs.Lvl]
}

// Summary is a one-line description of the state for logs and the debug
// clipboard copy.
func (gs *GameState) Summary() string {
	name := ""
	if l := gs.CurrentLevel(); l != nil {
		name = l.Name
	}
	sprite := ""
	if gs.Player != nil {
		sprite = gs.Player.Sprite()
	}
	return fmt.Sprintf("mode=%s lvl=%d/%d level=%q lives=%d/%d sprite=%s",
		gs.mode, gs.Lvl+1, len(gs.Levels), name, gs.Lives, gs.MaxLives, sprite)
}
