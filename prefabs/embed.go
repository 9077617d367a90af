package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var PrefabsFS embed.FS

// DiskDir is checked before the embedded copy so edits show up without a
// rebuild. Empty disables the override.
var DiskDir = "prefabs"

// Load reads a prefab or script by prefabs-relative path.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if DiskDir != "" {
		data, err := os.ReadFile(filepath.Join(DiskDir, filepath.FromSlash(clean)))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript reads a script from scripts/, accepting names with or without
// the directory prefix.
func LoadScript(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	clean = strings.TrimPrefix(clean, "scripts/")
	return Load(path.Join("scripts", clean))
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}
