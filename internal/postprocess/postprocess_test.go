package postprocess

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 200, 200, 200, 255
		}
	}
}

func TestDownsampleToTarget(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 128, 96))
	fillRect(src, 0, 0, 128, 96)

	out := Downsample(src, 64, 48)
	assert.Equal(t, 64, out.Bounds().Dx())
	assert.Equal(t, 48, out.Bounds().Dy())

	// A uniform opaque image stays uniform through the filter.
	c := out.NRGBAAt(32, 24)
	assert.Equal(t, uint8(255), c.A)
	assert.InDelta(t, 200, float64(c.R), 2)
}

func TestDownsampleNoUpscale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	assert.Same(t, src, Downsample(src, 64, 64))
}

func TestRemoveSmallClustersDropsSpeckles(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	fillRect(img, 8, 8, 40, 40) // subject: 1024 pixels
	fillRect(img, 60, 60, 62, 62)

	out := RemoveSmallClusters(img, 0.02)
	require.NotSame(t, img, out)

	assert.Equal(t, uint8(255), out.NRGBAAt(20, 20).A)
	assert.Equal(t, uint8(0), out.NRGBAAt(60, 60).A)
	// The input is untouched.
	assert.Equal(t, uint8(255), img.NRGBAAt(60, 60).A)
}

func TestRemoveSmallClustersSingleIsland(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	fillRect(img, 4, 4, 8, 8)
	assert.Same(t, img, RemoveSmallClusters(img, 0.5))
}

func TestRemoveSmallClustersEmptyImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	assert.Same(t, img, RemoveSmallClusters(img, 0.1))
}
