package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nokir/AssetScreenShotter/internal/direction"
)

func TestResolveDefaults(t *testing.T) {
	var s Settings
	s.Resolve(Flags{})

	assert.Equal(t, "renders", s.OutputDir)
	assert.Equal(t, "snapshot", s.BaseName)
	assert.Equal(t, "png", s.Format)
	assert.Equal(t, "normal", s.AngleMode)
	assert.Equal(t, 1024, s.Width)
	assert.Equal(t, 1024, s.Height)
	assert.Equal(t, 1.0, s.Zoom)
	assert.Equal(t, 2, s.Supersample)
	assert.Greater(t, s.Workers, 0)
}

func TestResolveFlagOverrides(t *testing.T) {
	s := Settings{OutputDir: "from-file", Width: 512}
	s.Resolve(Flags{OutputDir: "from-flag", Width: 2048, AngleMode: "both"})

	assert.Equal(t, "from-flag", s.OutputDir)
	assert.Equal(t, 2048, s.Width)
	assert.Equal(t, direction.ModeNormalAndDiagonal, s.Mode())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	s := Settings{
		OutputDir: "out",
		Format:    "webp",
		AngleMode: "diagonal",
		Width:     800,
		Height:    600,
		Zoom:      1.5,
		Offset:    [3]float64{0, 0.5, 0},
		Angles:    map[string]bool{"Front": true, "Back": false},
		Language:  "ja",
	}
	require.NoError(t, s.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestEnablementSeedsAllNames(t *testing.T) {
	s := Settings{Angles: map[string]bool{"Back": false}}
	e := s.Enablement()

	assert.False(t, e.IsEnabled("Back"))
	assert.True(t, e.IsEnabled("Front"))

	// Every catalog name gets an explicit entry.
	snap := e.Snapshot()
	for _, n := range direction.Names() {
		_, ok := snap[n]
		assert.True(t, ok, n)
	}
}

func TestRecordEnablement(t *testing.T) {
	var s Settings
	e := direction.NewEnablement()
	e.SetEnabled("Up", false)

	s.RecordEnablement(e)
	assert.Equal(t, map[string]bool{"Up": false}, s.Angles)
}
