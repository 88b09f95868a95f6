// Package scene models the object graph a capture operates on: a hierarchy
// of named objects, some carrying baked renderable geometry, some acting as
// lights or plain grouping nodes.
package scene

import (
	"image"

	"github.com/nokir/AssetScreenShotter/internal/mesh"
)

// Object is one node of the scene graph. Mesh vertices (when present) are
// already baked to world space by the loader, so Bounds is a plain AABB
// over them.
type Object struct {
	Name     string
	Parent   *Object
	Children []*Object
	Visible  bool
	Light    bool

	Mesh    *mesh.Mesh   // nil for lights and grouping nodes
	Texture *image.NRGBA // resolved diffuse texture, may be nil

	hasBounds bool
	bounds    Bounds // world-space AABB of the baked mesh
}

// Renderable reports whether the object itself carries geometry.
func (o *Object) Renderable() bool {
	return o.Mesh != nil && len(o.Mesh.Verts) > 0
}

// OwnBounds returns the object's world-space AABB and whether it has one.
func (o *Object) OwnBounds() (Bounds, bool) {
	return o.bounds, o.hasBounds
}

// SetBounds records a world-space AABB for an object built
// programmatically rather than through the loader.
func (o *Object) SetBounds(b Bounds) {
	o.bounds = b
	o.hasBounds = true
}

// Scene holds all objects of one loaded scene file, in file order.
type Scene struct {
	Objects []*Object
	byName  map[string]*Object
}

// Lookup returns the object with the given name, or nil.
func (s *Scene) Lookup(name string) *Object {
	return s.byName[name]
}

// Roots returns the objects without a parent, in file order.
func (s *Scene) Roots() []*Object {
	var out []*Object
	for _, o := range s.Objects {
		if o.Parent == nil {
			out = append(out, o)
		}
	}
	return out
}

// Lights returns all light objects, in file order.
func (s *Scene) Lights() []*Object {
	var out []*Object
	for _, o := range s.Objects {
		if o.Light {
			out = append(out, o)
		}
	}
	return out
}
