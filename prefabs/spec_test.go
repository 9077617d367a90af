package prefabs

import (
	"context"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func withDiskDir(t *testing.T, dir string) {
	t.Helper()
	prev := DiskDir
	DiskDir = dir
	t.Cleanup(func() { DiskDir = prev })
}

func TestEmbeddedSpecsLoad(t *testing.T) {
	withDiskDir(t, "")

	game, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("LoadGameSpec: %v", err)
	}
	if game.Lives != 3 {
		t.Fatalf("expected 3 lives, got %d", game.Lives)
	}
	if got := game.Background.Or(color.Black); got != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("unexpected background %v", got)
	}

	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if player.StartCol != 2 || player.StartRow != 5 {
		t.Fatalf("unexpected start tile (%d,%d)", player.StartCol, player.StartRow)
	}

	enemy, err := LoadEnemySpec()
	if err != nil {
		t.Fatalf("LoadEnemySpec: %v", err)
	}
	if enemy.Sprite != "enemy-bug" {
		t.Fatalf("unexpected enemy sprite %q", enemy.Sprite)
	}

	chars, err := LoadCharactersSpec()
	if err != nil {
		t.Fatalf("LoadCharactersSpec: %v", err)
	}
	if len(chars.Characters) != 5 {
		t.Fatalf("expected 5 characters, got %d", len(chars.Characters))
	}
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	withDiskDir(t, dir)

	data := []byte("name: player\nsprite: char-cat-girl\nstart_col: 1\nstart_row: 4\n")
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.Sprite != "char-cat-girl" || spec.StartCol != 1 {
		t.Fatalf("disk copy not used: %+v", spec)
	}

	// Files missing on disk still come from the embedded copy.
	if _, err := LoadEnemySpec(); err != nil {
		t.Fatalf("LoadEnemySpec fallback: %v", err)
	}
}

func TestGameSpecValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"no_lives", "lives: 0\ncompanions: [a, b]\n"},
		{"one_companion", "lives: 3\ncompanions: [a]\n"},
		{"bad_color", "lives: 3\ncompanions: [a, b]\nbackground: \"#zz\"\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			withDiskDir(t, dir)
			if err := os.WriteFile(filepath.Join(dir, "game.yaml"), []byte(c.yaml), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadGameSpec(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ffffff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"102030", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"#10203040", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("err=%v, wantErr=%v", err, c.wantErr)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestSpeedScript(t *testing.T) {
	withDiskDir(t, "")

	script, err := LoadSpeedScript("scripts/speed.tengo")
	if err != nil {
		t.Fatalf("LoadSpeedScript: %v", err)
	}

	cases := []struct {
		name string
		in   SpeedInput
		want float64
	}{
		{"roll_zero_is_base", SpeedInput{Base: 100, Spread: 150, Step: 0.25, Level: 2, Roll: 0}, 100},
		{"first_level", SpeedInput{Base: 100, Spread: 150, Step: 0.25, Level: 0, Roll: 0.5}, 175},
		{"later_level_is_faster", SpeedInput{Base: 100, Spread: 150, Step: 0.25, Level: 2, Roll: 0.5}, 212.5},
		{"negative_spread_floors_at_base", SpeedInput{Base: 100, Spread: -50, Step: 0, Level: 0, Roll: 1}, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := script.Eval(context.Background(), c.in)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestEnemySpecScriptLoads(t *testing.T) {
	withDiskDir(t, "")

	enemy, err := LoadEnemySpec()
	if err != nil {
		t.Fatalf("LoadEnemySpec: %v", err)
	}
	if enemy.SpeedScript == "" {
		t.Fatalf("enemy.yaml names no speed script")
	}
	script, err := LoadSpeedScript(enemy.SpeedScript)
	if err != nil {
		t.Fatalf("LoadSpeedScript(%q): %v", enemy.SpeedScript, err)
	}
	got, err := script.Eval(context.Background(), SpeedInput{Base: 80, Spread: enemy.Spread, Step: enemy.Step})
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got != 80 {
		t.Fatalf("zero roll should give the base speed, got %v", got)
	}
}

func TestCompileSpeedScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", "speed := ("},
		{"no_speed", "x := base * 2"},
		{"speed_undefined", "speed := undefined"},
		{"runaway", "for {}\nspeed := base"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := CompileSpeedScript(c.name, []byte(c.src)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestIsReloadable(t *testing.T) {
	cases := map[string]bool{
		"prefabs/game.yaml":           true,
		"prefabs/scripts/SPEED.TENGO": true,
		"levels/level_1.json":         true,
		"prefabs/game.yaml~":          false,
		"assets/images/grass.png":     false,
	}
	for path, want := range cases {
		if got := IsReloadable(path); got != want {
			t.Fatalf("%s: expected %v, got %v", path, want, got)
		}
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(target, []byte("lives: 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// Close must leave Events closed; draining terminates only then.
	for range w.Events {
	}
}
