package mathutil

// LookRotation builds a rotation whose columns are the camera basis
// (right, up, forward) for a view looking along forward with the given up
// hint. When the hint is parallel to forward it falls back to world
// forward, then world right, so the basis is always well-defined for a
// non-zero forward.
func LookRotation(forward, upHint Vec3) Mat3 {
	f := forward.Normalize()

	r := upHint.Cross(f)
	if r.Len() < 1e-9 {
		r = WorldForward.Cross(f)
	}
	if r.Len() < 1e-9 {
		r = Vec3{1, 0, 0}.Cross(f)
	}
	r = r.Normalize()
	u := f.Cross(r)
	return Mat3FromColumns(r, u, f)
}
