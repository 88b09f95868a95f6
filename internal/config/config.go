// Package config holds the tool's persisted settings. Persistence is an
// explicit load-at-start / save-at-end boundary: the core packages receive
// plain values and never touch this store.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/nokir/AssetScreenShotter/internal/direction"
)

// Settings holds all configurable paths and capture options.
type Settings struct {
	// Output
	OutputDir  string `json:"output_dir"`
	BaseName   string `json:"base_name"`
	Format     string `json:"format"` // "png" or "webp"
	OpenFolder bool   `json:"open_folder"`

	// Capture
	AngleMode   string     `json:"angle_mode"` // "normal", "diagonal", "both"
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	Zoom        float64    `json:"zoom"`
	Offset      [3]float64 `json:"offset"`
	Supersample int        `json:"supersample"`
	Workers     int        `json:"workers"`

	// Per-direction enabled flags, keyed by catalog name. Absent names
	// count as enabled; unknown names are tolerated.
	Angles map[string]bool `json:"angles,omitempty"`

	// UI language of the surrounding tool; carried through save/load but
	// not consumed by the capture core.
	Language string `json:"language,omitempty"`
}

// Load reads a JSON settings file. Fields not set in the file keep their
// zero values; call Resolve afterwards.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return s, nil
}

// Save writes the settings as indented JSON.
func (s Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Flags holds CLI flag values that override settings-file values.
type Flags struct {
	OutputDir string
	BaseName  string
	Format    string
	AngleMode string
	Width     int
	Height    int
	Zoom      float64
	Workers   int
}

// Resolve applies flag overrides and fills remaining empty fields with
// defaults.
func (s *Settings) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		s.OutputDir = flags.OutputDir
	}
	if flags.BaseName != "" {
		s.BaseName = flags.BaseName
	}
	if flags.Format != "" {
		s.Format = flags.Format
	}
	if flags.AngleMode != "" {
		s.AngleMode = flags.AngleMode
	}
	if flags.Width > 0 {
		s.Width = flags.Width
	}
	if flags.Height > 0 {
		s.Height = flags.Height
	}
	if flags.Zoom > 0 {
		s.Zoom = flags.Zoom
	}
	if flags.Workers > 0 {
		s.Workers = flags.Workers
	}

	if s.OutputDir == "" {
		s.OutputDir = "renders"
	}
	if s.BaseName == "" {
		s.BaseName = "snapshot"
	}
	if s.Format == "" {
		s.Format = "png"
	}
	if s.AngleMode == "" {
		s.AngleMode = "normal"
	}
	if s.Width <= 0 {
		s.Width = 1024
	}
	if s.Height <= 0 {
		s.Height = 1024
	}
	if s.Zoom <= 0 {
		s.Zoom = 1
	}
	if s.Supersample <= 0 {
		s.Supersample = 2
	}
	if s.Workers <= 0 {
		s.Workers = runtime.NumCPU()
	}
}

// Mode parses the angle-mode setting.
func (s *Settings) Mode() direction.Mode {
	return direction.ParseMode(s.AngleMode)
}

// Enablement builds the direction enablement store from the persisted
// angle map and seeds explicit defaults for every catalog name.
func (s *Settings) Enablement() *direction.Enablement {
	e := direction.EnablementFromMap(s.Angles)
	e.InitializeDefaults(direction.Names())
	return e
}

// RecordEnablement writes the store's state back into the settings for the
// next Save.
func (s *Settings) RecordEnablement(e *direction.Enablement) {
	s.Angles = e.Snapshot()
}
