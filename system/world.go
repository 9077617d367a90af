package system

import (
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/bugrun/levels"
	"github.com/milk9111/bugrun/obj"
	"github.com/milk9111/bugrun/prefabs"
)

// WorldConfig is everything needed to build a fresh GameState.
type WorldConfig struct {
	Game       *prefabs.GameSpec
	Player     *prefabs.PlayerSpec
	Enemy      *prefabs.EnemySpec
	Characters *prefabs.CharactersSpec
	Layouts    []*levels.Layout
	// Speed re-rolls enemy speeds on wrap; nil keeps each lane's base speed.
	Speed *prefabs.SpeedScript
	// Rand feeds the speed script's roll; nil uses the global source.
	Rand *rand.Rand
}

// NewGameState builds the levels, player and selector described by cfg and
// resets the result to the start screen.
func NewGameState(cfg WorldConfig) (*GameState, error) {
	if cfg.Game == nil || cfg.Player == nil || cfg.Enemy == nil || cfg.Characters == nil {
		return nil, fmt.Errorf("system: world: missing prefab spec")
	}
	if len(cfg.Layouts) == 0 {
		return nil, fmt.Errorf("system: world: no levels")
	}

	cols, rows := cfg.Layouts[0].Cols, len(cfg.Layouts[0].Rows)
	for _, l := range cfg.Layouts[1:] {
		if l.Cols != cols || len(l.Rows) != rows {
			return nil, fmt.Errorf("system: world: level %q is %dx%d, want %dx%d", l.Name, l.Cols, len(l.Rows), cols, rows)
		}
	}
	ps := cfg.Player
	if ps.StartCol < 0 || ps.StartCol >= cols || ps.StartRow <= 0 || ps.StartRow >= rows {
		return nil, fmt.Errorf("system: world: player start (%d,%d) outside %dx%d board", ps.StartCol, ps.StartRow, cols, rows)
	}
	for _, l := range cfg.Layouts {
		for i, lane := range l.Lanes {
			if lane.Row == ps.StartRow {
				return nil, fmt.Errorf("system: world: level %q: lane %d is on the player's start row %d", l.Name, i, ps.StartRow)
			}
		}
	}

	player := obj.NewPlayer(ps.Sprite, ps.StartCol, ps.StartRow, cols, rows)
	player.Inset = ps.HitboxInset

	chars := make([]obj.Character, 0, len(cfg.Characters.Characters))
	for _, c := range cfg.Characters.Characters {
		chars = append(chars, obj.Character{Name: c.Name, Sprite: c.Sprite})
	}

	roller := &speedRoller{
		script: cfg.Speed,
		spread: cfg.Enemy.Spread,
		step:   cfg.Enemy.Step,
		rng:    cfg.Rand,
	}
	lvls := make([]*Level, 0, len(cfg.Layouts))
	for i, layout := range cfg.Layouts {
		lvls = append(lvls, &Level{
			Name:    layout.Name,
			Board:   obj.NewBoard(layout.Rows, layout.Cols),
			Enemies: spawnEnemies(layout, i, cfg.Enemy, roller),
		})
	}

	gs := &GameState{
		MaxLives: cfg.Game.Lives,
		Player:   player,
		Levels:   lvls,
		Selector: obj.NewSelector(chars),
	}
	gs.Reset()
	return gs, nil
}

// ThemeFromSpec fills a Theme from game.yaml, keeping defaults for anything
// left unset.
func ThemeFromSpec(spec *prefabs.GameSpec) Theme {
	t := DefaultTheme()
	if spec == nil {
		return t
	}
	t.Background = spec.Background.Or(t.Background)
	t.Text = spec.TextColor.Or(t.Text)
	t.Outline = spec.OutlineColor.Or(t.Outline)
	if len(spec.Companions) == 2 {
		t.Companions = [2]string{spec.Companions[0], spec.Companions[1]}
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&t.Texts.StartTitle, spec.Texts.StartTitle)
	set(&t.Texts.StartHint, spec.Texts.StartHint)
	set(&t.Texts.WinTitle, spec.Texts.WinTitle)
	set(&t.Texts.WinHint, spec.Texts.WinHint)
	set(&t.Texts.OverTitle, spec.Texts.OverTitle)
	set(&t.Texts.OverHint, spec.Texts.OverHint)
	return t
}
