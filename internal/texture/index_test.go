package texture

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestBuildIndexFindsNestedTextures(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Hero_Body.png"))
	touch(t, filepath.Join(dir, "sub", "sword.jpg"))
	touch(t, filepath.Join(dir, "notes.txt"))

	idx := BuildIndex(dir)
	assert.Equal(t, 2, idx.Len())

	// Lookup is case-insensitive and ignores path prefix and extension.
	p, ok := idx.ResolvePath(`models\textures\HERO_BODY.tga`)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "Hero_Body.png"), p)

	_, ok = idx.ResolvePath("missing")
	assert.False(t, ok)
}

func TestBuildIndexFormatPriority(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "skin.jpg"))
	touch(t, filepath.Join(dir, "skin.png"))
	touch(t, filepath.Join(dir, "other", "skin.tga"))

	idx := BuildIndex(dir)
	require.Equal(t, 1, idx.Len())

	p, ok := idx.ResolvePath("skin")
	require.True(t, ok)
	assert.Equal(t, ".tga", filepath.Ext(p))
}

func TestBuildIndexMissingDirectory(t *testing.T) {
	idx := BuildIndex(filepath.Join(t.TempDir(), "nope"))
	assert.Equal(t, 0, idx.Len())
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 2, 2))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.png"), buf.Bytes(), 0644))
	// A png extension with garbage content fails to decode.
	touch(t, filepath.Join(dir, "broken.png"))

	c := NewCache(BuildIndex(dir))

	img := c.Resolve("ok")
	require.NotNil(t, img)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Same(t, img, c.Resolve("ok"))

	assert.Nil(t, c.Resolve("broken"))
	assert.Nil(t, c.Resolve("absent"))
}
