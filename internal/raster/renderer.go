package raster

import (
	"image"

	"github.com/nokir/AssetScreenShotter/internal/frame"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/scene"
)

// Render draws every visible renderable under the given roots through an
// orthographic camera and returns the image at width*supersample ×
// height*supersample pixels (the caller downsamples). Subtrees under an
// invisible object are skipped entirely.
func Render(roots []*scene.Object, cam frame.Camera, width, height, supersample int, lc *LightConfig) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	rw := width * supersample
	rh := height * supersample
	fb := NewFrameBuffer(rw, rh)

	if lc == nil {
		def := DefaultLightConfig()
		lc = &def
	}

	right, up, forward := cam.Basis()
	halfH := cam.HalfExtent
	halfW := halfH * float64(width) / float64(height)

	for _, o := range roots {
		renderTree(o, fb, cam.Position, right, up, forward, halfW, halfH, lc)
	}

	return fb.ToImage()
}

func renderTree(o *scene.Object, fb *FrameBuffer, eye, right, up, forward mathutil.Vec3, halfW, halfH float64, lc *LightConfig) {
	if !o.Visible {
		return
	}
	if o.Renderable() {
		renderMesh(o, fb, eye, right, up, forward, halfW, halfH, lc)
	}
	for _, c := range o.Children {
		renderTree(c, fb, eye, right, up, forward, halfW, halfH, lc)
	}
}

func renderMesh(o *scene.Object, fb *FrameBuffer, eye, right, up, forward mathutil.Vec3, halfW, halfH float64, lc *LightConfig) {
	m := o.Mesh
	px, py, pz := projectVertices(m.Verts, fb.Width, fb.Height, eye, right, up, forward, halfW, halfH)

	tex := o.Texture
	var defR, defG, defB, defA uint8 = 160, 160, 170, 255
	if tex != nil {
		defR, defG, defB, defA = averageColor(tex)
	}

	for _, tri := range m.Tris {
		vi := [3]int{tri.VI[0], tri.VI[1], tri.VI[2]}
		ti := [3]int{tri.TI[0], tri.TI[1], tri.TI[2]}
		RasterizeTriangle(fb, px, py, pz, m.UVs, vi, ti, tex, defR, defG, defB, defA, lc)

		// Quad: second triangle
		if tri.Polygon == 4 {
			vi2 := [3]int{tri.VI[0], tri.VI[2], tri.VI[3]}
			ti2 := [3]int{tri.TI[0], tri.TI[2], tri.TI[3]}
			RasterizeTriangle(fb, px, py, pz, m.UVs, vi2, ti2, tex, defR, defG, defB, defA, lc)
		}
	}
}

// projectVertices maps world-space vertices to screen coordinates through
// the orthographic view basis. Returns px, py, pz slices (screen X, screen
// Y, depth with larger = closer).
func projectVertices(verts [][3]float64, rw, rh int, eye, right, up, forward mathutil.Vec3, halfW, halfH float64) ([]float64, []float64, []float64) {
	n := len(verts)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)

	cx := float64(rw) / 2
	cy := float64(rh) / 2

	for i := range verts {
		d := mathutil.Vec3(verts[i]).Sub(eye)
		px[i] = d.Dot(right)/halfW*cx + cx
		py[i] = -d.Dot(up)/halfH*cy + cy
		pz[i] = -d.Dot(forward)
	}

	return px, py, pz
}

func averageColor(tex *image.NRGBA) (uint8, uint8, uint8, uint8) {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return 160, 160, 170, 255
	}

	var sumR, sumG, sumB float64
	stride := tex.Stride
	for y := 0; y < h; y++ {
		off := y * stride
		for x := 0; x < w; x++ {
			i := off + x*4
			sumR += float64(tex.Pix[i])
			sumG += float64(tex.Pix[i+1])
			sumB += float64(tex.Pix[i+2])
		}
	}
	n := float64(w * h)
	return uint8(sumR/n + 0.5), uint8(sumG/n + 0.5), uint8(sumB/n + 0.5), 255
}
