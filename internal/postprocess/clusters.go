package postprocess

import "image"

// RemoveSmallClusters clears opaque pixel islands that hold less than
// minRatio of the image's total coverage. Thin silhouette edges sometimes
// leave stray speckles after downsampling; dropping the tiny islands keeps
// the subject intact. The input image is not modified.
func RemoveSmallClusters(img *image.NRGBA, minRatio float64) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	covered := make([]bool, w*h)
	total := 0
	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			if img.Pix[row+x*4+3] > 0 {
				covered[y*w+x] = true
				total++
			}
		}
	}
	if total == 0 {
		return img
	}

	// Label 8-connected islands with a DFS over an explicit stack.
	island := make([]int, w*h)
	for i := range island {
		island[i] = -1
	}
	var sizes []int
	stack := make([]int, 0, 256)

	for start := range covered {
		if !covered[start] || island[start] >= 0 {
			continue
		}
		id := len(sizes)
		size := 0

		stack = append(stack[:0], start)
		island[start] = id
		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++

			px, py := p%w, p/w
			for ny := py - 1; ny <= py+1; ny++ {
				if ny < 0 || ny >= h {
					continue
				}
				for nx := px - 1; nx <= px+1; nx++ {
					if nx < 0 || nx >= w {
						continue
					}
					n := ny*w + nx
					if covered[n] && island[n] < 0 {
						island[n] = id
						stack = append(stack, n)
					}
				}
			}
		}
		sizes = append(sizes, size)
	}

	if len(sizes) <= 1 {
		return img
	}

	minSize := int(float64(total) * minRatio)
	out := image.NewNRGBA(b)
	copy(out.Pix, img.Pix)
	for p, id := range island {
		if id >= 0 && sizes[id] < minSize {
			i := (p/w)*out.Stride + (p%w)*4
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = 0, 0, 0, 0
		}
	}
	return out
}
