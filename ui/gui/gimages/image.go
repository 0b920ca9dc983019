// Package gimages binds the texture cache to ebiten, the GUI's rendering
// backend.
package gimages

import (
	"chessassets/src/cacher"
	"chessassets/src/logx"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Filter for drawing cached piece textures. The assets are pixel art;
// linear filtering smears them.
const Filter = ebiten.FilterNearest

// EbitenContext loads image files into GPU-resident ebiten images.
type EbitenContext struct{}

func (EbitenContext) LoadTexture(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DrawOptions returns draw options preconfigured with the cache's
// filtering mode.
func DrawOptions() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.Filter = Filter
	return op
}

// NewPieceCache discovers the assets directory and loads all piece and
// board textures for a GUI caller.
func NewPieceCache(log logx.Logger) (*cacher.Cacher[*ebiten.Image], error) {
	return cacher.NewAndPopulate[*ebiten.Image](EbitenContext{}, log)
}

// NewPieceCacheAt is NewPieceCache with an explicit assets directory.
func NewPieceCacheAt(dir string, log logx.Logger) (*cacher.Cacher[*ebiten.Image], error) {
	c, err := cacher.NewAt[*ebiten.Image](dir, log)
	if err != nil {
		return nil, err
	}
	if err := c.Populate(EbitenContext{}); err != nil {
		return nil, err
	}
	return c, nil
}
