package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/HugoSmits86/nativewebp"
)

func imageExt(format string) string {
	if format == "webp" {
		return "webp"
	}
	return "png"
}

// writeImage encodes the image in the requested format and persists it.
// Failures are reported once, never retried.
func writeImage(path string, img *image.NRGBA, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()

	if format == "webp" {
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("snapshot: webp encode %s: %w", path, err)
		}
		return nil
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("snapshot: png encode %s: %w", path, err)
	}
	return nil
}
