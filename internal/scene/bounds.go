package scene

import "github.com/nokir/AssetScreenShotter/internal/mathutil"

// Bounds is a world-space axis-aligned box. The zero value is the
// degenerate box: origin center, zero size.
type Bounds struct {
	Center mathutil.Vec3
	Size   mathutil.Vec3 // non-negative per axis
}

// BoundsFromMinMax builds a Bounds from corner points.
func BoundsFromMinMax(min, max mathutil.Vec3) Bounds {
	return Bounds{
		Center: min.Add(max).Scale(0.5),
		Size:   max.Sub(min),
	}
}

// Min returns the minimal corner.
func (b Bounds) Min() mathutil.Vec3 {
	return b.Center.Sub(b.Size.Scale(0.5))
}

// Max returns the maximal corner.
func (b Bounds) Max() mathutil.Vec3 {
	return b.Center.Add(b.Size.Scale(0.5))
}

// Encapsulate returns the minimal box enclosing both b and o. Merging is
// commutative and associative up to floating point.
func (b Bounds) Encapsulate(o Bounds) Bounds {
	return BoundsFromMinMax(b.Min().Min(o.Min()), b.Max().Max(o.Max()))
}

// ComputeBounds returns the minimal AABB enclosing every renderable under
// the given objects, descendants included. Input order does not affect the
// result. With no renderables at all it returns the degenerate zero box —
// empty input is valid, not an error.
func ComputeBounds(objects []*Object) Bounds {
	var out Bounds
	first := true
	for _, o := range objects {
		collectBounds(o, &out, &first)
	}
	return out
}

func collectBounds(o *Object, acc *Bounds, first *bool) {
	if b, ok := o.OwnBounds(); ok {
		if *first {
			*acc = b
			*first = false
		} else {
			*acc = acc.Encapsulate(b)
		}
	}
	for _, c := range o.Children {
		collectBounds(c, acc, first)
	}
}
