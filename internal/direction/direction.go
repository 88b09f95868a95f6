// Package direction defines the canonical capture directions and the
// per-direction enablement toggles. Direction names are stable identifiers:
// they are persisted in settings and become image filename suffixes, so they
// must never be renamed or reordered.
package direction

import "github.com/nokir/AssetScreenShotter/internal/mathutil"

// Direction pairs a stable name with a capture vector. Vectors are stored
// unnormalized (diagonals are ±1 per component) and normalized by the frame
// solver before use.
type Direction struct {
	Name   string
	Vector mathutil.Vec3
}

// Mode selects which direction catalogs are active.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDiagonal
	ModeNormalAndDiagonal
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDiagonal:
		return "diagonal"
	case ModeNormalAndDiagonal:
		return "both"
	}
	return "unknown"
}

// ParseMode maps a settings string to a Mode. Unrecognized values fall back
// to ModeNormal.
func ParseMode(s string) Mode {
	switch s {
	case "diagonal":
		return ModeDiagonal
	case "both":
		return ModeNormalAndDiagonal
	}
	return ModeNormal
}

// The six axis-aligned directions, in catalog order.
var normals = []Direction{
	{"Front", mathutil.Vec3{0, 0, 1}},
	{"Back", mathutil.Vec3{0, 0, -1}},
	{"Right", mathutil.Vec3{1, 0, 0}},
	{"Left", mathutil.Vec3{-1, 0, 0}},
	{"Up", mathutil.Vec3{0, 1, 0}},
	{"Down", mathutil.Vec3{0, -1, 0}},
}

// The eight corner directions, in catalog order. Names list the Z word,
// then the X word, then the Y word, matching the filename suffix contract.
var diagonals = []Direction{
	{"Front_Right_Up", mathutil.Vec3{1, 1, 1}},
	{"Front_Right_Down", mathutil.Vec3{1, -1, 1}},
	{"Front_Left_Up", mathutil.Vec3{-1, 1, 1}},
	{"Front_Left_Down", mathutil.Vec3{-1, -1, 1}},
	{"Back_Right_Up", mathutil.Vec3{1, 1, -1}},
	{"Back_Right_Down", mathutil.Vec3{1, -1, -1}},
	{"Back_Left_Up", mathutil.Vec3{-1, 1, -1}},
	{"Back_Left_Down", mathutil.Vec3{-1, -1, -1}},
}

// Normals returns the six axis-aligned directions in catalog order.
func Normals() []Direction {
	out := make([]Direction, len(normals))
	copy(out, normals)
	return out
}

// Diagonals returns the eight corner directions in catalog order.
func Diagonals() []Direction {
	out := make([]Direction, len(diagonals))
	copy(out, diagonals)
	return out
}

// ForMode returns the active catalog(s) for a mode. For
// ModeNormalAndDiagonal the normals precede the diagonals, each in catalog
// order.
func ForMode(m Mode) []Direction {
	switch m {
	case ModeDiagonal:
		return Diagonals()
	case ModeNormalAndDiagonal:
		out := make([]Direction, 0, len(normals)+len(diagonals))
		out = append(out, normals...)
		out = append(out, diagonals...)
		return out
	}
	return Normals()
}

// Names returns every known direction name across both catalogs.
func Names() []string {
	out := make([]string, 0, len(normals)+len(diagonals))
	for _, d := range normals {
		out = append(out, d.Name)
	}
	for _, d := range diagonals {
		out = append(out, d.Name)
	}
	return out
}
