// Package images serves the decorative artwork shown alongside a
// reading.
package images

import (
	"context"
	"fmt"
	"os"
	"path"
)

// DirLibrary lists image files from a directory on disk. Paths are
// returned relative to the serving prefix so they can be embedded in
// responses directly.
type DirLibrary struct {
	dir    string
	prefix string
}

func NewDirLibrary(dir, prefix string) *DirLibrary {
	return &DirLibrary{dir: dir, prefix: prefix}
}

func (l *DirLibrary) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read image dir: %w", err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, path.Join(l.prefix, e.Name()))
	}
	return out, nil
}
