package main

import (
	"github.com/nokir/AssetScreenShotter/internal/capture"
	"github.com/nokir/AssetScreenShotter/internal/frame"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
)

// softViewer is the interactive viewer the preview TUI drives: pivot,
// rotation, orthographic size and flag, plus the camera distance needed to
// reconstruct a render camera from that state.
type softViewer struct {
	state  capture.ViewState
	dist   float64
	aspect float64
}

func newSoftViewer(aspect float64, home frame.Camera) *softViewer {
	v := &softViewer{aspect: aspect}
	v.Apply(home)
	return v
}

func (v *softViewer) Aspect() float64 { return v.aspect }

func (v *softViewer) State() capture.ViewState { return v.state }

func (v *softViewer) Restore(s capture.ViewState) { v.state = s }

// Apply points the viewer at a solved camera placement (look-at with
// rotation).
func (v *softViewer) Apply(c frame.Camera) {
	v.state.Pivot = c.LookTarget
	v.state.Rotation = mathutil.Mat3ToQuat(c.Rotation())
	v.state.Size = c.HalfExtent
	v.state.Orthographic = true
	v.dist = c.Position.Sub(c.LookTarget).Len()
}

// camera reconstructs the render camera from the stored view state.
func (v *softViewer) camera() frame.Camera {
	rot := mathutil.QuatToMat3(v.state.Rotation)
	forward := rot.Column(2)
	up := rot.Column(1)
	d := v.dist
	if d <= 0 {
		d = 10
	}
	size := v.state.Size
	if size <= 0 {
		size = frame.MinHalfExtent
	}
	return frame.Camera{
		Position:   v.state.Pivot.Sub(forward.Scale(d)),
		LookTarget: v.state.Pivot,
		Up:         up,
		HalfExtent: size,
	}
}
