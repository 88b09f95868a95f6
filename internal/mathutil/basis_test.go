package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec(t *testing.T, want, got Vec3, delta float64) {
	t.Helper()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], got[k], delta)
	}
}

func assertOrthonormal(t *testing.T, m Mat3) {
	t.Helper()
	r, u, f := m.Column(0), m.Column(1), m.Column(2)
	assert.InDelta(t, 1, r.Len(), 1e-9)
	assert.InDelta(t, 1, u.Len(), 1e-9)
	assert.InDelta(t, 1, f.Len(), 1e-9)
	assert.InDelta(t, 0, r.Dot(u), 1e-9)
	assert.InDelta(t, 0, r.Dot(f), 1e-9)
	assert.InDelta(t, 0, u.Dot(f), 1e-9)
}

func TestLookRotationForwardColumn(t *testing.T) {
	forward := Vec3{3, 1, -2}
	m := LookRotation(forward, WorldUp)
	assertOrthonormal(t, m)
	assertVec(t, forward.Normalize(), m.Column(2), 1e-9)
}

func TestLookRotationFallbackWhenHintParallel(t *testing.T) {
	// Looking straight up with an up hint: the cross product degenerates
	// and the basis falls back to world forward.
	for _, forward := range []Vec3{{0, 1, 0}, {0, -1, 0}} {
		m := LookRotation(forward, WorldUp)
		assertOrthonormal(t, m)
		assertVec(t, forward, m.Column(2), 1e-9)
	}

	// Hint parallel to forward along Z degenerates twice and lands on the
	// final world-right fallback.
	m := LookRotation(WorldForward, WorldForward)
	assertOrthonormal(t, m)
	assertVec(t, WorldForward, m.Column(2), 1e-9)
}

func TestLookRotationRoundTripsThroughQuat(t *testing.T) {
	dirs := []Vec3{{1, 1, 1}, {-1, 0.5, 2}, {0, 0, -1}, {5, -1, 0.25}}
	for _, d := range dirs {
		m := LookRotation(d, WorldUp)
		back := QuatToMat3(Mat3ToQuat(m))
		for i := range m {
			assert.InDelta(t, m[i], back[i], 1e-9)
		}
	}
}

func TestEulerToQuatMatchesRotationMatrices(t *testing.T) {
	rx, ry, rz := Deg2Rad(30), Deg2Rad(-45), Deg2Rad(120)

	q := EulerToQuat(rx, ry, rz)
	want := Mat3Mul(Mat3Mul(RotZ(rz), RotY(ry)), RotX(rx))
	got := QuatToMat3(q)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestMat3ToQuatCoversAllBranches(t *testing.T) {
	// 180-degree rotations about each axis have a non-positive trace and
	// exercise the per-axis branches of the conversion.
	cases := []Mat3{
		RotX(math.Pi),
		RotY(math.Pi),
		RotZ(math.Pi),
		Mat3Identity(),
	}
	for _, m := range cases {
		q := Mat3ToQuat(m)
		norm := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
		require.InDelta(t, 1, norm, 1e-9)

		back := QuatToMat3(q)
		for i := range m {
			assert.InDelta(t, m[i], back[i], 1e-9)
		}
	}
}

func TestTRSComposesInOrder(t *testing.T) {
	rot := RotZ(math.Pi / 2)
	m := TRS(rot, 2, Vec3{10, 0, 0})

	// Scale and rotate first, translate last: (1,0,0) → (0,2,0) → (10,2,0).
	got := m.MulPoint(Vec3{1, 0, 0})
	assertVec(t, Vec3{10, 2, 0}, got, 1e-9)

	// Rotation keeps the scale baked into the upper-left block.
	back := m.Rotation()
	for i := range rot {
		assert.InDelta(t, rot[i]*2, back[i], 1e-9)
	}
}
