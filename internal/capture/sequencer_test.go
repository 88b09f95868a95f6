package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nokir/AssetScreenShotter/internal/direction"
	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/scene"
)

func testBounds() scene.Bounds {
	return scene.Bounds{Size: mathutil.Vec3{2, 2, 2}}
}

func TestEnabledDirectionsPreservesOrder(t *testing.T) {
	store := direction.NewEnablement()
	store.SetEnabled("Back", false)
	store.SetEnabled("Up", false)

	got := EnabledDirections(direction.ModeNormal, store)
	names := make([]string, len(got))
	for i, d := range got {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"Front", "Right", "Left", "Down"}, names)
}

func TestEnabledDirectionsAllDisabled(t *testing.T) {
	store := direction.NewEnablement()
	for _, n := range direction.Names() {
		store.SetEnabled(n, false)
	}
	assert.Empty(t, EnabledDirections(direction.ModeNormalAndDiagonal, store))
}

func TestBatchFramesOrderAndContent(t *testing.T) {
	store := direction.NewEnablement()
	frames := BatchFrames(testBounds(), direction.ModeDiagonal, store, 1, 1, mathutil.Vec3{})
	require.Len(t, frames, 8)

	for i, d := range direction.Diagonals() {
		assert.Equal(t, d.Name, frames[i].Name)
		assert.Greater(t, frames[i].Camera.HalfExtent, 0.0)
		// Camera sits along the normalized direction at standoff distance.
		want := d.Vector.Normalize().Scale(testBounds().Size.Len() * 1.5)
		for k := 0; k < 3; k++ {
			assert.InDelta(t, want[k], frames[i].Camera.Position[k], 1e-9)
		}
	}
}

func TestBatchFramesSkipsDisabled(t *testing.T) {
	store := direction.NewEnablement()
	for _, n := range direction.Names() {
		store.SetEnabled(n, n == "Left")
	}

	frames := BatchFrames(testBounds(), direction.ModeNormalAndDiagonal, store, 1, 1, mathutil.Vec3{})
	require.Len(t, frames, 1)
	assert.Equal(t, "Left", frames[0].Name)
}

func TestBatchFramesEmptyIsNotAnError(t *testing.T) {
	store := direction.NewEnablement()
	for _, n := range direction.Names() {
		store.SetEnabled(n, false)
	}
	assert.Empty(t, BatchFrames(testBounds(), direction.ModeNormal, store, 1, 1, mathutil.Vec3{}))
}
