package capture

import (
	"github.com/nokir/AssetScreenShotter/internal/frame"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
)

// ViewState is a snapshot of an interactive viewer, saved before the first
// preview step and restored on reset.
type ViewState struct {
	Pivot        mathutil.Vec3
	Rotation     mathutil.Quat
	Size         float64 // orthographic half-extent
	Orthographic bool
}

// Viewer is the interactive view a preview drives. The preview reads and
// writes it only during step and reset.
type Viewer interface {
	// Aspect returns the viewer's own aspect ratio. Preview framing uses
	// this, not the export resolution, so the preview matches the viewport.
	Aspect() float64
	// State captures the current view for later restoration.
	State() ViewState
	// Restore puts the viewer back into a previously captured state.
	Restore(ViewState)
	// Apply points the viewer at a solved camera placement.
	Apply(frame.Camera)
}
