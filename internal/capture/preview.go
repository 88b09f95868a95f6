package capture

import (
	"github.com/nokir/AssetScreenShotter/internal/direction"
	"github.com/nokir/AssetScreenShotter/internal/frame"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/scene"
)

// Previewer steps an interactive viewer through the enabled directions of a
// mode, one user action at a time, with wraparound. The cursor index is a
// position into the FULL per-mode direction list, not the enabled subset,
// so re-enabling a direction later resumes cycling in stable catalog order.
//
// Owned by one editing session; not safe for concurrent use (none occurs —
// steps and resets are discrete user actions on a single UI thread).
type Previewer struct {
	index  int // -1 = no direction shown yet
	active bool
	saved  ViewState
}

// NewPreviewer returns an idle previewer.
func NewPreviewer() *Previewer {
	return &Previewer{index: -1}
}

// Active reports whether a saved view state is being held.
func (p *Previewer) Active() bool { return p.active }

// Index returns the cursor position into the full per-mode list (-1 when
// no direction is shown).
func (p *Previewer) Index() int { return p.index }

// Step advances to the next enabled direction of the mode, solves a frame
// for it against the viewer's own aspect ratio and applies it. On the first
// step it saves the viewer's current state for Reset. The scan starts at
// (index+1) mod N and wraps, skipping disabled entries; if none of the N
// candidates is enabled it returns ErrNoAngleEnabled and leaves the cursor
// untouched.
func (p *Previewer) Step(v Viewer, b scene.Bounds, mode direction.Mode, store *direction.Enablement, zoom float64, offset mathutil.Vec3) (direction.Direction, error) {
	if v == nil {
		return direction.Direction{}, ErrNoSceneView
	}

	dirs := direction.ForMode(mode)
	n := len(dirs)
	found := -1
	for i := 0; i < n; i++ {
		cand := (p.index + 1 + i) % n
		if store.IsEnabled(dirs[cand].Name) {
			found = cand
			break
		}
	}
	if found < 0 {
		return direction.Direction{}, ErrNoAngleEnabled
	}

	if !p.active {
		p.saved = v.State()
		p.active = true
	}
	p.index = found

	d := dirs[found]
	v.Apply(frame.Solve(b, d.Vector, v.Aspect(), zoom, offset, mode))
	return d, nil
}

// Reset restores the viewer to the state saved by the first Step and
// clears the cursor. No-op when idle.
func (p *Previewer) Reset(v Viewer) {
	if !p.active {
		p.index = -1
		return
	}
	if v != nil {
		v.Restore(p.saved)
	}
	p.saved = ViewState{}
	p.active = false
	p.index = -1
}

// ModeChanged must be called when the angle mode switches while previewing.
// It clears only the cursor index; the active flag and the saved view state
// stay as they are, so the next Step re-derives its direction from the new
// mode's list and Reset still restores the original view. (Clearing the
// active flag here too would lose the saved view without restoring it.)
func (p *Previewer) ModeChanged() {
	p.index = -1
}
