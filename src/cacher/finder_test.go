package cacher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mk(t *testing.T, elem ...string) string {
	t.Helper()
	p := filepath.Join(elem...)
	require.NoError(t, os.MkdirAll(p, 0755))
	return p
}

func TestFindDirInStart(t *testing.T) {
	root := t.TempDir()
	want := mk(t, root, "assets")

	got, err := FindDir(root, "assets", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindDirInParents(t *testing.T) {
	root := t.TempDir()
	want := mk(t, root, "assets")
	start := mk(t, root, "a", "b", "c")

	got, err := FindDir(start, "assets", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindDirBeyondParentBound(t *testing.T) {
	root := t.TempDir()
	mk(t, root, "assets")
	start := mk(t, root, "a", "b", "c", "d")

	_, err := FindDir(start, "assets", 3, 0)
	require.ErrorIs(t, err, ErrAssetsDirNotFound)
}

func TestFindDirInKids(t *testing.T) {
	root := t.TempDir()
	want := mk(t, root, "x", "y", "assets")

	got, err := FindDir(root, "assets", 0, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindDirBeyondKidBound(t *testing.T) {
	root := t.TempDir()
	mk(t, root, "x", "y", "z", "assets")

	_, err := FindDir(root, "assets", 0, 3)
	require.ErrorIs(t, err, ErrAssetsDirNotFound)
}

func TestFindDirParentsBeforeKids(t *testing.T) {
	root := t.TempDir()
	parent := mk(t, root, "assets")
	start := mk(t, root, "work")
	mk(t, start, "sub", "assets")

	got, err := FindDir(start, "assets", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, parent, got)
}

func TestFindDirIgnoresFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets"), []byte("not a dir"), 0644))

	_, err := FindDir(root, "assets", 0, 0)
	require.ErrorIs(t, err, ErrAssetsDirNotFound)
}
