package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Layout is one level: a tile sprite per row, top to bottom, and the enemy
// lanes crossing it.
type Layout struct {
	Name  string   `json:"name"`
	Cols  int      `json:"cols"`
	Rows  []string `json:"rows"`
	Lanes []Lane   `json:"lanes"`
}

// Lane places one enemy: its row, starting x and base speed in pixels per
// second.
type Lane struct {
	Row   int     `json:"row"`
	X     float64 `json:"x"`
	Speed float64 `json:"speed"`
}

// Validate checks that every lane sits on the board.
func (l *Layout) Validate() error {
	if l.Cols <= 0 {
		return fmt.Errorf("level %q: cols must be positive", l.Name)
	}
	if len(l.Rows) < 2 {
		return fmt.Errorf("level %q: need a goal row and a start row", l.Name)
	}
	for i, lane := range l.Lanes {
		if lane.Row <= 0 || lane.Row >= len(l.Rows) {
			return fmt.Errorf("level %q: lane %d: row %d outside 1..%d", l.Name, i, lane.Row, len(l.Rows)-1)
		}
		if lane.Speed <= 0 {
			return fmt.Errorf("level %q: lane %d: speed must be positive", l.Name, i)
		}
	}
	return nil
}

// LoadLevelFromFS reads and validates one level file.
func LoadLevelFromFS(fsys fs.FS, name string) (*Layout, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Layout
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, ".json")
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// LoadAllFromFS loads every *.json level in fsys in file name order.
func LoadAllFromFS(fsys fs.FS) ([]*Layout, error) {
	names, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	sort.Strings(names)

	out := make([]*Layout, 0, len(names))
	for _, name := range names {
		lvl, err := LoadLevelFromFS(fsys, name)
		if err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	return out, nil
}

// LoadAll loads the levels in dir when it exists on disk, falling back to
// the embedded set.
func LoadAll(dir string) ([]*Layout, error) {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return LoadAllFromFS(os.DirFS(dir))
		}
	}
	return LoadAllFromFS(LevelsFS)
}
