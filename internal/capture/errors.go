package capture

import "errors"

// User-input conditions. Each aborts only the current operation and leaves
// settings and enablement state untouched.
var (
	ErrNoSelection    = errors.New("capture: no target objects selected")
	ErrNoSceneView    = errors.New("capture: no interactive viewer available")
	ErrNoAngleEnabled = errors.New("capture: no angle enabled for the current mode")
)
