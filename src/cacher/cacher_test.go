package cacher

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"chessassets/src/logx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeContext records load order and fails on the configured names.
type fakeContext struct {
	loaded []string
	fail   map[string]error
}

func (f *fakeContext) LoadTexture(path string) (string, error) {
	name := filepath.Base(path)
	if err, ok := f.fail[name]; ok {
		return "", err
	}
	f.loaded = append(f.loaded, name)
	return "tex:" + name, nil
}

func TestRequiredAssets(t *testing.T) {
	names := RequiredAssets()
	require.Len(t, names, 15)
	assert.Equal(t, "black_bishop.png", names[0])
	assert.Equal(t, "white_bishop.png", names[1])
	assert.Equal(t, []string{"board_alt.png", "highlight.png", "selected.png"}, names[12:])
}

func TestPopulateSuccess(t *testing.T) {
	c, err := NewAt[string](t.TempDir(), logx.NewNop())
	require.NoError(t, err)
	assert.Equal(t, StateUnpopulated, c.State())

	ctx := &fakeContext{}
	require.NoError(t, c.Populate(ctx))

	assert.Equal(t, StatePopulated, c.State())
	assert.Equal(t, 15, c.Len())
	assert.Equal(t, RequiredAssets(), ctx.loaded)

	tex, ok := c.Get("white_king.png")
	require.True(t, ok)
	assert.Equal(t, "tex:white_king.png", tex)

	_, ok = c.Get("nonexistent.png")
	assert.False(t, ok)
}

func TestPopulateFailFast(t *testing.T) {
	c, err := NewAt[string](t.TempDir(), logx.NewNop())
	require.NoError(t, err)

	cause := fmt.Errorf("no such file")
	ctx := &fakeContext{fail: map[string]error{"black_rook.png": cause}}
	err = c.Populate(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "black rook")

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "black_rook.png", le.Name)
	assert.ErrorIs(t, le, cause)

	assert.Equal(t, StateFailed, c.State())

	// nothing after the failing variant was attempted
	for _, name := range ctx.loaded {
		assert.NotEqual(t, "white_rook.png", name)
		assert.NotEqual(t, "board_alt.png", name)
	}

	// a failed cache serves nothing, not even what loaded before the failure
	_, ok := c.Get("black_bishop.png")
	assert.False(t, ok)

	// terminal: no repopulation
	require.Error(t, c.Populate(&fakeContext{}))
}

func TestPopulateFailOnExtra(t *testing.T) {
	c, err := NewAt[string](t.TempDir(), logx.NewNop())
	require.NoError(t, err)

	err = c.Populate(&fakeContext{fail: map[string]error{"highlight.png": errors.New("bad png")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "highlight.png")
	assert.Equal(t, StateFailed, c.State())
}

func TestGetBeforePopulate(t *testing.T) {
	c, err := NewAt[string](t.TempDir(), logx.NewNop())
	require.NoError(t, err)

	_, ok := c.Get("white_king.png")
	assert.False(t, ok)
}

func TestPopulateTwice(t *testing.T) {
	c, err := NewAt[string](t.TempDir(), logx.NewNop())
	require.NoError(t, err)
	require.NoError(t, c.Populate(&fakeContext{}))

	err = c.Populate(&fakeContext{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "populated")
	assert.Equal(t, StatePopulated, c.State())
}

func TestNewAtRejectsMissingDir(t *testing.T) {
	_, err := NewAt[string](filepath.Join(t.TempDir(), "nope"), logx.NewNop())
	require.ErrorIs(t, err, ErrAssetsDirNotFound)
}
