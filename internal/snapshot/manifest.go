package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry records one written image in the output manifest.
type ManifestEntry struct {
	Direction string `json:"direction"`
	File      string `json:"file"`
	Error     string `json:"error,omitempty"`
}

// WriteManifest writes a manifest.json next to the captured images listing
// every attempted direction in capture order.
func WriteManifest(outDir string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Direction: r.Direction,
			File:      filepath.Base(r.File),
		}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, "manifest.json"), data, 0644)
}
