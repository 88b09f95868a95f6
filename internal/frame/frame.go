// Package frame computes orthographic camera placements that consistently
// frame a bounding volume from any capture direction.
package frame

import (
	"github.com/nokir/AssetScreenShotter/internal/direction"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/scene"
)

const (
	// Standoff is the fixed multiplier applied to the bounding-volume
	// diagonal length when positioning the camera. At zoom 1 it keeps the
	// camera clear of the volume for every direction.
	Standoff = 1.5

	// MinHalfExtent is the floor for the orthographic half-extent so a
	// degenerate (empty or flat) volume never produces a non-positive
	// projection height.
	MinHalfExtent = 0.1
)

// Camera is one solved orthographic placement. Computed fresh per
// direction, never persisted.
type Camera struct {
	Position   mathutil.Vec3
	LookTarget mathutil.Vec3
	Up         mathutil.Vec3
	HalfExtent float64 // half the vertical viewing height, always > 0
}

// Solve places an orthographic camera along dir so the volume b (shifted by
// offset) fills the view at the given aspect ratio and zoom. Pure and
// total: degenerate inputs are clamped, not rejected.
//
// The up vector is world-forward only when mode is Normal and dir is
// exactly the Up or Down unit vector; every other case uses world-up.
// Diagonal vectors with a ±Y component never match exactly, so they never
// take the substitution.
func Solve(b scene.Bounds, dir mathutil.Vec3, aspect, zoom float64, offset mathutil.Vec3, mode direction.Mode) Camera {
	target := b.Center.Add(offset)
	position := target.Add(dir.Normalize().Scale(b.Size.Len() * Standoff))

	up := mathutil.WorldUp
	if mode == direction.ModeNormal && (dir == mathutil.WorldUp || dir == mathutil.WorldUp.Scale(-1)) {
		up = mathutil.WorldForward
	}

	requiredVertical := b.Size[1] / 2
	requiredHorizontal := (b.Size[0] / aspect) / 2
	halfExtent := requiredVertical
	if requiredHorizontal > halfExtent {
		halfExtent = requiredHorizontal
	}
	halfExtent /= zoom
	if halfExtent <= 0 {
		halfExtent = MinHalfExtent
	}

	return Camera{
		Position:   position,
		LookTarget: target,
		Up:         up,
		HalfExtent: halfExtent,
	}
}

// Basis returns the camera's orthonormal view basis: right, up and forward
// (from camera toward the look target).
func (c Camera) Basis() (right, up, forward mathutil.Vec3) {
	rot := mathutil.LookRotation(c.LookTarget.Sub(c.Position), c.Up)
	return rot.Column(0), rot.Column(1), rot.Column(2)
}

// Rotation returns the view basis as a rotation matrix (columns right, up,
// forward), used by the interactive viewer to store its orientation.
func (c Camera) Rotation() mathutil.Mat3 {
	return mathutil.LookRotation(c.LookTarget.Sub(c.Position), c.Up)
}
