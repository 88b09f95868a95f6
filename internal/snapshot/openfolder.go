package snapshot

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenFolder opens the directory in the platform file browser. Best-effort
// convenience for the open-folder setting; the capture itself never depends
// on it.
func OpenFolder(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("snapshot: open folder %s: %w", path, err)
	}
	return nil
}
