package main

import (
	"fmt"
	"log"

	"github.com/milk9111/bugrun/levels"
	"github.com/milk9111/bugrun/prefabs"
	"github.com/milk9111/bugrun/system"
)

// levelsDir is checked on disk before the embedded level set.
const levelsDir = "levels"

// world is one loaded configuration: the game state plus what the renderer
// and canvas need from game.yaml.
type world struct {
	state *system.GameState
	theme system.Theme
	spec  *prefabs.GameSpec
}

// loadWorld reads prefabs, levels and the speed script and builds a fresh
// game state from them, applying command line overrides.
func loadWorld(opts Options) (*world, error) {
	game, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemy, err := prefabs.LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	chars, err := prefabs.LoadCharactersSpec()
	if err != nil {
		return nil, err
	}
	layouts, err := levels.LoadAll(levelsDir)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}

	var speed *prefabs.SpeedScript
	if enemy.SpeedScript != "" {
		speed, err = prefabs.LoadSpeedScript(enemy.SpeedScript)
		if err != nil {
			return nil, err
		}
	}

	gs, err := system.NewGameState(system.WorldConfig{
		Game:       game,
		Player:     player,
		Enemy:      enemy,
		Characters: chars,
		Layouts:    layouts,
		Speed:      speed,
	})
	if err != nil {
		return nil, err
	}

	if opts.Lives > 0 {
		gs.MaxLives = opts.Lives
	}
	if opts.Level > 0 {
		if opts.Level > len(gs.Levels) {
			return nil, fmt.Errorf("level %d: only %d levels", opts.Level, len(gs.Levels))
		}
		gs.StartLvl = opts.Level - 1
	}
	gs.Reset()

	log.Printf("world: %d levels, %d lives, start on %d", len(gs.Levels), gs.MaxLives, gs.Lvl+1)
	return &world{state: gs, theme: system.ThemeFromSpec(game), spec: game}, nil
}
