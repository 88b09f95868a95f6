package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nokir/AssetScreenShotter/internal/direction"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/scene"
)

func unitBox() scene.Bounds {
	return scene.Bounds{Size: mathutil.Vec3{2, 2, 2}}
}

func TestSolveFrontPlacement(t *testing.T) {
	cam := Solve(unitBox(), mathutil.Vec3{0, 0, 1}, 1, 1, mathutil.Vec3{}, direction.ModeNormal)

	// Diagonal of a 2×2×2 box is sqrt(12); standoff multiplies by 1.5.
	wantZ := 1.5 * math.Sqrt(12)
	assert.InDelta(t, 0, cam.Position[0], 1e-9)
	assert.InDelta(t, 0, cam.Position[1], 1e-9)
	assert.InDelta(t, wantZ, cam.Position[2], 1e-9)
	assert.Equal(t, mathutil.Vec3{}, cam.LookTarget)
	assert.Equal(t, mathutil.WorldUp, cam.Up)
	assert.InDelta(t, 1.0, cam.HalfExtent, 1e-9)
}

func TestUpVectorRule(t *testing.T) {
	up := mathutil.Vec3{0, 1, 0}
	down := mathutil.Vec3{0, -1, 0}

	cases := []struct {
		name string
		dir  mathutil.Vec3
		mode direction.Mode
		want mathutil.Vec3
	}{
		{"up normal", up, direction.ModeNormal, mathutil.WorldForward},
		{"down normal", down, direction.ModeNormal, mathutil.WorldForward},
		{"front normal", mathutil.Vec3{0, 0, 1}, direction.ModeNormal, mathutil.WorldUp},
		{"up under both", up, direction.ModeNormalAndDiagonal, mathutil.WorldUp},
		{"up under diagonal", up, direction.ModeDiagonal, mathutil.WorldUp},
		{"diagonal with +Y", mathutil.Vec3{1, 1, 1}, direction.ModeDiagonal, mathutil.WorldUp},
		{"diagonal with -Y", mathutil.Vec3{-1, -1, -1}, direction.ModeNormalAndDiagonal, mathutil.WorldUp},
		// Nearly-but-not-exactly up must not take the substitution.
		{"almost up", mathutil.Vec3{1e-9, 1, 0}, direction.ModeNormal, mathutil.WorldUp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cam := Solve(unitBox(), tc.dir, 1, 1, mathutil.Vec3{}, tc.mode)
			assert.Equal(t, tc.want, cam.Up)
		})
	}
}

func TestHalfExtentAspectAndZoom(t *testing.T) {
	b := scene.Bounds{Size: mathutil.Vec3{4, 2, 1}}

	// Wide bounds at a narrow aspect: horizontal requirement dominates.
	cam := Solve(b, mathutil.Vec3{0, 0, 1}, 0.5, 1, mathutil.Vec3{}, direction.ModeNormal)
	assert.InDelta(t, 4.0, cam.HalfExtent, 1e-9) // (4/0.5)/2

	// Zoom divides the extent.
	cam = Solve(b, mathutil.Vec3{0, 0, 1}, 0.5, 2, mathutil.Vec3{}, direction.ModeNormal)
	assert.InDelta(t, 2.0, cam.HalfExtent, 1e-9)
}

func TestHalfExtentClampedForDegenerateBounds(t *testing.T) {
	cam := Solve(scene.Bounds{}, mathutil.Vec3{0, 0, 1}, 1, 1, mathutil.Vec3{}, direction.ModeNormal)
	assert.Equal(t, MinHalfExtent, cam.HalfExtent)
	assert.Greater(t, cam.HalfExtent, 0.0)
}

func TestSolveAppliesOffset(t *testing.T) {
	off := mathutil.Vec3{1, 2, 3}
	cam := Solve(unitBox(), mathutil.Vec3{0, 0, 1}, 1, 1, off, direction.ModeNormal)
	assert.Equal(t, off, cam.LookTarget)
}

func TestBasisOrthonormal(t *testing.T) {
	for _, d := range direction.ForMode(direction.ModeNormalAndDiagonal) {
		cam := Solve(unitBox(), d.Vector, 1.5, 1, mathutil.Vec3{}, direction.ModeNormalAndDiagonal)
		r, u, f := cam.Basis()

		assert.InDelta(t, 1, r.Len(), 1e-9, d.Name)
		assert.InDelta(t, 1, u.Len(), 1e-9, d.Name)
		assert.InDelta(t, 1, f.Len(), 1e-9, d.Name)
		assert.InDelta(t, 0, r.Dot(u), 1e-9, d.Name)
		assert.InDelta(t, 0, r.Dot(f), 1e-9, d.Name)
		assert.InDelta(t, 0, u.Dot(f), 1e-9, d.Name)

		// Forward points from the camera toward the target.
		want := cam.LookTarget.Sub(cam.Position).Normalize()
		assert.InDelta(t, want[0], f[0], 1e-9, d.Name)
		assert.InDelta(t, want[1], f[1], 1e-9, d.Name)
		assert.InDelta(t, want[2], f[2], 1e-9, d.Name)
	}
}
