package main

import (
	"image"
	"strings"
)

// renderANSI converts an image to half-block truecolor terminal output.
// Each character cell covers two vertically stacked pixels: the upper one
// as foreground of "▀", the lower one as background.
func renderANSI(img *image.NRGBA) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	var sb strings.Builder
	sb.Grow(w * h * 12)

	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			tr, tg, tb, ta := pixelAt(img, x, y)
			br, bg, bb, ba := uint8(0), uint8(0), uint8(0), uint8(0)
			if y+1 < h {
				br, bg, bb, ba = pixelAt(img, x, y+1)
			}

			switch {
			case ta < 8 && ba < 8:
				sb.WriteString("\x1b[0m ")
			case ba < 8:
				sb.WriteString("\x1b[49m")
				writeFg(&sb, tr, tg, tb)
				sb.WriteString("▀")
			case ta < 8:
				sb.WriteString("\x1b[49m")
				writeFg(&sb, br, bg, bb)
				sb.WriteString("▄")
			default:
				writeFg(&sb, tr, tg, tb)
				writeBg(&sb, br, bg, bb)
				sb.WriteString("▀")
			}
		}
		sb.WriteString("\x1b[0m\n")
	}
	return sb.String()
}

func pixelAt(img *image.NRGBA, x, y int) (r, g, b, a uint8) {
	i := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
}

func writeFg(sb *strings.Builder, r, g, b uint8) {
	sb.WriteString("\x1b[38;2;")
	writeUint(sb, r)
	sb.WriteByte(';')
	writeUint(sb, g)
	sb.WriteByte(';')
	writeUint(sb, b)
	sb.WriteByte('m')
}

func writeBg(sb *strings.Builder, r, g, b uint8) {
	sb.WriteString("\x1b[48;2;")
	writeUint(sb, r)
	sb.WriteByte(';')
	writeUint(sb, g)
	sb.WriteByte(';')
	writeUint(sb, b)
	sb.WriteByte('m')
}

func writeUint(sb *strings.Builder, v uint8) {
	if v >= 100 {
		sb.WriteByte('0' + v/100)
	}
	if v >= 10 {
		sb.WriteByte('0' + (v/10)%10)
	}
	sb.WriteByte('0' + v%10)
}
