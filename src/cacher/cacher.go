// Package cacher loads the chess asset images into a name-keyed texture
// map. The texture type is a type parameter so the GPU handle (an ebiten
// image, in the GUI) never leaks into the cache logic and tests can run
// without a rendering context.
package cacher

import (
	"fmt"
	"os"
	"path/filepath"

	"chessassets/src/chess"
	"chessassets/src/logx"
)

// Board geometry shared with whoever draws the cached textures.
const (
	TileSize  = 20.0
	BoardSize = 256.0
)

// ExtraAssets are the fixed non-piece images loaded after the twelve
// piece variants.
var ExtraAssets = [...]string{"board_alt.png", "highlight.png", "selected.png"}

// Context is the caller-owned rendering boundary: anything that can turn
// an image file on disk into a texture handle. Piece textures are pixel
// art, so implementations should use nearest-neighbor filtering.
type Context[T any] interface {
	LoadTexture(path string) (T, error)
}

type State uint8

const (
	StateUnpopulated State = iota
	StatePopulated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnpopulated:
		return "unpopulated"
	case StatePopulated:
		return "populated"
	case StateFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// Cacher owns one texture per required asset, keyed by file name.
// Population happens once; afterwards the cache is read-only.
type Cacher[T any] struct {
	path   string
	assets map[string]T
	state  State
	logx   logx.Logger
}

// New resolves the assets directory by searching up to SearchParents
// parent levels and SearchKids child levels from the working directory.
func New[T any](log logx.Logger) (*Cacher[T], error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	path, err := FindDir(wd, assetsDirName, SearchParents, SearchKids)
	if err != nil {
		return nil, err
	}
	log.Debugf("assets directory resolved: %s", path)
	return &Cacher[T]{path: path, assets: make(map[string]T), logx: log}, nil
}

// NewAt skips discovery and uses dir as the assets directory.
func NewAt[T any](dir string, log logx.Logger) (*Cacher[T], error) {
	if !isDir(dir) {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrAssetsDirNotFound, dir)
	}
	return &Cacher[T]{path: dir, assets: make(map[string]T), logx: log}, nil
}

// NewAndPopulate composes New and Populate, failing with whichever step
// failed first.
func NewAndPopulate[T any](ctx Context[T], log logx.Logger) (*Cacher[T], error) {
	c, err := New[T](log)
	if err != nil {
		return nil, err
	}
	if err := c.Populate(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Populate loads every piece variant in variant order, then the extra
// assets. The first failure aborts the whole attempt and leaves the cache
// failed; a failed or already populated cache cannot be repopulated.
func (c *Cacher[T]) Populate(ctx Context[T]) error {
	if c.state != StateUnpopulated {
		return fmt.Errorf("cacher: populate on %s cache", c.state)
	}

	for _, variant := range chess.AllVariants() {
		if err := c.insert(ctx, variant.FileName()); err != nil {
			c.state = StateFailed
			c.logx.Errorf("populate aborted at %s: %v", variant, err)
			return fmt.Errorf("unable to insert %s: %w", variant, err)
		}
	}

	for _, extra := range ExtraAssets {
		if err := c.insert(ctx, extra); err != nil {
			c.state = StateFailed
			c.logx.Errorf("populate aborted at %s: %v", extra, err)
			return fmt.Errorf("unable to insert %q: %w", extra, err)
		}
	}

	c.state = StatePopulated
	c.logx.Infof("texture cache populated: %d assets from %s", len(c.assets), c.path)
	return nil
}

func (c *Cacher[T]) insert(ctx Context[T], name string) error {
	tex, err := ctx.LoadTexture(filepath.Join(c.path, name))
	if err != nil {
		return &LoadError{Name: name, Err: err}
	}
	c.assets[name] = tex
	return nil
}

// Get looks up a texture by its file-name key. It never loads on demand,
// and serves nothing unless population fully succeeded.
func (c *Cacher[T]) Get(name string) (T, bool) {
	if c.state != StatePopulated {
		var zero T
		return zero, false
	}
	tex, ok := c.assets[name]
	return tex, ok
}

func (c *Cacher[T]) State() State {
	return c.state
}

func (c *Cacher[T]) Len() int {
	return len(c.assets)
}

// Dir is the resolved assets directory.
func (c *Cacher[T]) Dir() string {
	return c.path
}

// RequiredAssets lists every file Populate expects, in load order.
func RequiredAssets() []string {
	names := make([]string, 0, 12+len(ExtraAssets))
	for _, v := range chess.AllVariants() {
		names = append(names, v.FileName())
	}
	names = append(names, ExtraAssets[:]...)
	return names
}
