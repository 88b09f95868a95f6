// Package capture drives the frame solver over the enabled direction set:
// ordered batch frames for rendering, and a stateful single-step preview
// for the interactive viewer.
package capture

import (
	"github.com/nokir/AssetScreenShotter/internal/direction"
	"github.com/nokir/AssetScreenShotter/internal/frame"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/scene"
)

// NamedFrame pairs a direction name with its solved camera placement.
type NamedFrame struct {
	Name   string
	Camera frame.Camera
}

// EnabledDirections returns the mode's directions filtered to the enabled
// ones, preserving catalog order. An empty result is not an error here:
// batch capture simply produces zero images, preview reports
// ErrNoAngleEnabled.
func EnabledDirections(mode direction.Mode, store *direction.Enablement) []direction.Direction {
	var out []direction.Direction
	for _, d := range direction.ForMode(mode) {
		if store.IsEnabled(d.Name) {
			out = append(out, d)
		}
	}
	return out
}

// BatchFrames solves a camera placement for every enabled direction, in
// catalog order. The order is the order in which images must be captured
// and filename suffixes assigned.
func BatchFrames(b scene.Bounds, mode direction.Mode, store *direction.Enablement, aspect, zoom float64, offset mathutil.Vec3) []NamedFrame {
	var out []NamedFrame
	for _, d := range EnabledDirections(mode, store) {
		out = append(out, NamedFrame{
			Name:   d.Name,
			Camera: frame.Solve(b, d.Vector, aspect, zoom, offset, mode),
		})
	}
	return out
}
