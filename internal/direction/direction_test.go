package direction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalsOrder(t *testing.T) {
	got := Normals()
	require.Len(t, got, 6)

	names := make([]string, len(got))
	for i, d := range got {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"Front", "Back", "Right", "Left", "Up", "Down"}, names)

	assert.Equal(t, [3]float64{0, 0, 1}, [3]float64(got[0].Vector))
	assert.Equal(t, [3]float64{0, 1, 0}, [3]float64(got[4].Vector))
}

func TestDiagonalsAreCorners(t *testing.T) {
	got := Diagonals()
	require.Len(t, got, 8)

	seen := make(map[[3]float64]bool)
	for _, d := range got {
		v := [3]float64(d.Vector)
		for _, c := range v {
			assert.Contains(t, []float64{-1, 1}, c, "%s component", d.Name)
		}
		assert.False(t, seen[v], "duplicate corner %v", v)
		seen[v] = true
	}
}

func TestForModeConcatenation(t *testing.T) {
	both := ForMode(ModeNormalAndDiagonal)
	require.Len(t, both, 14)

	seen := make(map[string]bool)
	for i, d := range both {
		assert.False(t, seen[d.Name], "duplicate %s", d.Name)
		seen[d.Name] = true
		if i < 6 {
			assert.Equal(t, Normals()[i].Name, d.Name)
		} else {
			assert.Equal(t, Diagonals()[i-6].Name, d.Name)
		}
	}

	assert.Len(t, ForMode(ModeNormal), 6)
	assert.Len(t, ForMode(ModeDiagonal), 8)
}

func TestForModeReturnsCopies(t *testing.T) {
	a := ForMode(ModeNormal)
	a[0].Name = "mutated"
	assert.Equal(t, "Front", ForMode(ModeNormal)[0].Name)
}

func TestParseModeRoundTrip(t *testing.T) {
	for _, m := range []Mode{ModeNormal, ModeDiagonal, ModeNormalAndDiagonal} {
		assert.Equal(t, m, ParseMode(m.String()))
	}
	assert.Equal(t, ModeNormal, ParseMode("bogus"))
}

func TestEnablementDefaultsTrue(t *testing.T) {
	e := NewEnablement()
	assert.True(t, e.IsEnabled("Front"))
	assert.True(t, e.IsEnabled("never-written"))

	e.SetEnabled("Front", false)
	assert.False(t, e.IsEnabled("Front"))
	assert.True(t, e.IsEnabled("Back"))
}

func TestInitializeDefaultsIdempotent(t *testing.T) {
	e := EnablementFromMap(map[string]bool{"Up": false})
	e.InitializeDefaults(Names())
	snap := e.Snapshot()
	require.Len(t, snap, 14)
	assert.False(t, snap["Up"])
	assert.True(t, snap["Front"])

	e.InitializeDefaults(Names())
	assert.Equal(t, snap, e.Snapshot())
}

func TestEnablementFromMapCopies(t *testing.T) {
	src := map[string]bool{"Front": false}
	e := EnablementFromMap(src)
	src["Front"] = true
	assert.False(t, e.IsEnabled("Front"))
}
