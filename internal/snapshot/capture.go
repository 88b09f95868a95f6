// Package snapshot runs batch captures: it isolates the targets, renders
// every enabled direction in catalog order and writes one image per
// direction.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nokir/AssetScreenShotter/internal/capture"
	"github.com/nokir/AssetScreenShotter/internal/direction"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/postprocess"
	"github.com/nokir/AssetScreenShotter/internal/raster"
	"github.com/nokir/AssetScreenShotter/internal/scene"
)

// ErrDirectoryCreation marks an uncreatable output directory. It aborts the
// whole batch before any rendering begins.
var ErrDirectoryCreation = errors.New("snapshot: cannot create output directory")

// Options configures one capture invocation.
type Options struct {
	OutDir      string
	BaseName    string
	Format      string // "png" or "webp"; anything else falls back to png
	Mode        direction.Mode
	Width       int
	Height      int
	Supersample int
	Zoom        float64
	Offset      mathutil.Vec3
	Clean       bool // remove small speckle clusters after downsampling

	// Progress, when set, is called once per direction after its image is
	// written (or failed).
	Progress func(done, total int, name string)
}

// Result records the outcome for one direction.
type Result struct {
	Direction string
	File      string
	Err       error
}

// TimestampFormat produces the token shared by every file of one batch.
const TimestampFormat = "20060102_150405"

// FileName assembles the output filename for one direction:
// {base}_{timestamp}_{Direction}.{ext}.
func FileName(base, stamp, dir, format string) string {
	return fmt.Sprintf("%s_%s_%s.%s", base, stamp, dir, imageExt(format))
}

// Capture renders every enabled direction of the mode for the target
// objects and writes the images to opts.OutDir. now supplies the shared
// timestamp token. A per-direction encode or write failure is recorded in
// its Result and the batch continues; earlier images are never lost.
// Scene visibility is restored on every exit path.
func Capture(sc *scene.Scene, targets []*scene.Object, store *direction.Enablement, opts Options, now time.Time) ([]Result, error) {
	if len(targets) == 0 {
		return nil, capture.ErrNoSelection
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryCreation, opts.OutDir, err)
	}

	stamp := now.Format(TimestampFormat)
	aspect := float64(opts.Width) / float64(opts.Height)

	restore := scene.Isolate(targets, sc.Objects)
	defer restore()

	bounds := scene.ComputeBounds(targets)
	frames := capture.BatchFrames(bounds, opts.Mode, store, aspect, opts.Zoom, opts.Offset)

	lc := raster.DefaultLightConfig()
	results := make([]Result, 0, len(frames))
	for i, nf := range frames {
		path := filepath.Join(opts.OutDir, FileName(opts.BaseName, stamp, nf.Name, opts.Format))
		err := renderOne(sc, nf, opts, &lc, path)
		results = append(results, Result{Direction: nf.Name, File: path, Err: err})
		if opts.Progress != nil {
			opts.Progress(i+1, len(frames), nf.Name)
		}
	}

	return results, nil
}

// renderOne scopes the render target to a single direction: the
// framebuffer and intermediate images die with this call whether or not
// the write succeeds.
func renderOne(sc *scene.Scene, nf capture.NamedFrame, opts Options, lc *raster.LightConfig, path string) error {
	img := raster.Render(sc.Roots(), nf.Camera, opts.Width, opts.Height, opts.Supersample, lc)
	if opts.Supersample > 1 {
		img = postprocess.Downsample(img, opts.Width, opts.Height)
	}
	if opts.Clean {
		img = postprocess.RemoveSmallClusters(img, 0.02)
	}
	return writeImage(path, img, opts.Format)
}
