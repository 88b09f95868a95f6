package direction

// Enablement maps direction names to their enabled flag. Absent names
// count as enabled, so directions added in a later release show up without
// any settings migration.
type Enablement struct {
	m map[string]bool
}

// NewEnablement returns an empty store (every direction enabled).
func NewEnablement() *Enablement {
	return &Enablement{m: make(map[string]bool)}
}

// EnablementFromMap wraps a persisted name→enabled mapping. Entries for
// unknown names are tolerated and ignored by consumers. The map is copied.
func EnablementFromMap(src map[string]bool) *Enablement {
	e := NewEnablement()
	for k, v := range src {
		e.m[k] = v
	}
	return e
}

// IsEnabled reports whether a direction is enabled; absent names default
// to true.
func (e *Enablement) IsEnabled(name string) bool {
	if v, ok := e.m[name]; ok {
		return v
	}
	return true
}

// SetEnabled records the flag for a direction name.
func (e *Enablement) SetEnabled(name string, enabled bool) {
	e.m[name] = enabled
}

// InitializeDefaults inserts an explicit true for every known name that is
// absent, making the fail-open default persistable. Idempotent; call after
// loading settings and whenever the catalog may have grown.
func (e *Enablement) InitializeDefaults(names []string) {
	for _, n := range names {
		if _, ok := e.m[n]; !ok {
			e.m[n] = true
		}
	}
}

// Snapshot returns a copy of the mapping for persistence.
func (e *Enablement) Snapshot() map[string]bool {
	out := make(map[string]bool, len(e.m))
	for k, v := range e.m {
		out[k] = v
	}
	return out
}
