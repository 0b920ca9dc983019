package ggen

import (
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"chessassets/src/cacher"
	"chessassets/src/logx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeContext struct{}

func (decodeContext) LoadTexture(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

func TestGenerateThenPopulate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	require.NoError(t, Generate(dir))

	assert.Empty(t, Missing(dir))

	c, err := cacher.NewAt[image.Image](dir, logx.NewNop())
	require.NoError(t, err)
	require.NoError(t, c.Populate(decodeContext{}))
	assert.Equal(t, 15, c.Len())

	img, ok := c.Get("white_pawn.png")
	require.True(t, ok)
	assert.Equal(t, 64, img.Bounds().Dx())

	board, ok := c.Get("board_alt.png")
	require.True(t, ok)
	assert.Equal(t, 256, board.Bounds().Dx())
}

func TestMissingReportsAbsent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	require.NoError(t, Generate(dir))
	require.NoError(t, os.Remove(filepath.Join(dir, "black_rook.png")))

	assert.Equal(t, []string{"black_rook.png"}, Missing(dir))
}

func TestPopulateFailsOnMissingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	require.NoError(t, Generate(dir))
	require.NoError(t, os.Remove(filepath.Join(dir, "black_rook.png")))

	c, err := cacher.NewAt[image.Image](dir, logx.NewNop())
	require.NoError(t, err)

	err = c.Populate(decodeContext{})
	require.Error(t, err)

	var le *cacher.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "black_rook.png", le.Name)
	assert.Equal(t, cacher.StateFailed, c.State())
}
