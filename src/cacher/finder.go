package cacher

import (
	"fmt"
	"os"
	"path/filepath"
)

const assetsDirName = "assets"

// Search bounds: how far Find walks up through parents and down through
// child directories before giving up.
const (
	SearchParents = 3
	SearchKids    = 3
)

// FindDir locates a directory called name, starting at start. Parents are
// searched first: start itself, then up to `up` parent levels, each checked
// for a child directory with the wanted name. If that fails, children of
// start are searched breadth-first down to `down` levels.
func FindDir(start, name string, up, down int) (string, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	dir := start
	for i := 0; i <= up; i++ {
		cand := filepath.Join(dir, name)
		if isDir(cand) {
			return cand, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	level := []string{start}
	for i := 0; i < down && len(level) > 0; i++ {
		var next []string
		for _, d := range level {
			entries, err := os.ReadDir(d)
			if err != nil {
				continue
			}
			for _, e := range entries {
				if !e.IsDir() {
					continue
				}
				child := filepath.Join(d, e.Name())
				if e.Name() == name {
					return child, nil
				}
				next = append(next, child)
			}
		}
		level = next
	}

	return "", fmt.Errorf("%w: searched %d parents and %d child levels from %s", ErrAssetsDirNotFound, up, down, start)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
