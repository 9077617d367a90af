package assets

import (
	"embed"
	"fmt"
	_ "image/png"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed images/*.png sounds/*.wav
var assetsFS embed.FS

// Images returns the embedded sprite directory; sprite ids are file names
// without the .png extension.
func Images() fs.FS {
	sub, err := fs.Sub(assetsFS, "images")
	if err != nil {
		panic(fmt.Sprintf("assets: images dir: %v", err))
	}
	return sub
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	return strings.TrimPrefix(s, "assets/")
}

