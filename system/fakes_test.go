package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bugrun/obj"
	"github.com/milk9111/bugrun/render"
)

// farBB never overlaps anything a test places on the board.
var farBB = cp.BB{L: -1000, B: -1000, R: -990, T: -990}

// calls is shared by fakes so tests can check cross-entity ordering.
type calls []string

func (c *calls) add(format string, args ...any) {
	*c = append(*c, fmt.Sprintf(format, args...))
}

type fakeEnemy struct {
	name   string
	log    *calls
	dts    []float64
	resets int
}

func (e *fakeEnemy) Update(dt float64) {
	e.dts = append(e.dts, dt)
	e.log.add("%s.update", e.name)
}

func (e *fakeEnemy) Render(s render.Surface) {
	s.DrawSprite(e.name, 0, 0)
}

func (e *fakeEnemy) Bounds() cp.BB { return farBB }

func (e *fakeEnemy) Reset() { e.resets++ }

type fakePlayer struct {
	log     *calls
	sprite  string
	row     int
	updates int
	resets  int
	moves   []obj.Direction
}

func (p *fakePlayer) Update() {
	p.updates++
	p.log.add("player.update")
}

func (p *fakePlayer) Render(s render.Surface) {
	s.DrawSprite(p.sprite, 0, 0)
}

func (p *fakePlayer) Move(d obj.Direction) { p.moves = append(p.moves, d) }
func (p *fakePlayer) Sprite() string       { return p.sprite }
func (p *fakePlayer) SetSprite(id string)  { p.sprite = id }
func (p *fakePlayer) Row() int             { return p.row }
func (p *fakePlayer) Bounds() cp.BB        { return farBB }
func (p *fakePlayer) Reset()               { p.resets++ }

// fakeSelector lists characters but draws no backdrop.
type fakeSelector struct {
	chars  []obj.Character
	cursor int
}

func (s *fakeSelector) Render(render.Surface)       {}
func (s *fakeSelector) Characters() []obj.Character { return s.chars }
func (s *fakeSelector) Move(delta int)              { s.cursor += delta }
func (s *fakeSelector) Reset()                      { s.cursor = 0 }
func (s *fakeSelector) Selected() (obj.Character, bool) {
	if s.cursor < 0 || s.cursor >= len(s.chars) {
		return obj.Character{}, false
	}
	return s.chars[s.cursor], true
}

type fakeBoard struct{ log *calls }

func (b *fakeBoard) Render(s render.Surface) {
	if b.log != nil {
		b.log.add("board.render")
	}
	s.DrawSprite("board", 0, 0)
}

// newFakeState builds a game-mode state with one level per entry in
// enemiesPerLevel.
func newFakeState(log *calls, enemiesPerLevel ...int) *GameState {
	gs := &GameState{
		mode:     ModeGame,
		Lives:    3,
		MaxLives: 3,
		Player:   &fakePlayer{log: log, sprite: "char-boy", row: 5},
		Selector: &fakeSelector{},
	}
	for i, n := range enemiesPerLevel {
		lvl := &Level{Name: fmt.Sprintf("level-%d", i), Board: &fakeBoard{log: log}}
		for j := 0; j < n; j++ {
			lvl.Enemies = append(lvl.Enemies, &fakeEnemy{name: fmt.Sprintf("e%d", j), log: log})
		}
		gs.Levels = append(gs.Levels, lvl)
	}
	return gs
}
