package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nokir/AssetScreenShotter/internal/mathutil"
	"github.com/nokir/AssetScreenShotter/internal/mesh"
	"github.com/nokir/AssetScreenShotter/internal/texture"
)

// fileScene matches the scene JSON schema.
type fileScene struct {
	Objects []fileObject `json:"objects"`
}

type fileObject struct {
	Name     string     `json:"name"`
	Parent   string     `json:"parent,omitempty"`
	Mesh     string     `json:"mesh,omitempty"`    // OBJ path, relative to the scene file
	Texture  string     `json:"texture,omitempty"` // texture stem, resolved via the index
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"` // Euler XYZ, degrees
	Scale    float64    `json:"scale"`    // uniform; 0 means 1
	Visible  *bool      `json:"visible,omitempty"`
	Light    bool       `json:"light,omitempty"`
}

// Load reads a scene JSON file, loads referenced meshes, bakes world
// transforms into their vertices and computes per-object world bounds.
// textures may be nil, in which case objects render untextured.
func Load(path string, textures texture.Resolver) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var fs fileScene
	if err := json.Unmarshal(raw, &fs); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	return build(fs, filepath.Dir(path), textures)
}

func build(fs fileScene, baseDir string, textures texture.Resolver) (*Scene, error) {
	s := &Scene{byName: make(map[string]*Object, len(fs.Objects))}

	// First pass: create objects and load geometry.
	defs := make(map[*Object]fileObject, len(fs.Objects))
	for _, def := range fs.Objects {
		if def.Name == "" {
			return nil, fmt.Errorf("scene: object without a name")
		}
		if s.byName[def.Name] != nil {
			return nil, fmt.Errorf("scene: duplicate object %q", def.Name)
		}

		o := &Object{
			Name:    def.Name,
			Visible: def.Visible == nil || *def.Visible,
			Light:   def.Light,
		}
		if def.Mesh != "" {
			m, err := mesh.Parse(filepath.Join(baseDir, def.Mesh))
			if err != nil {
				return nil, fmt.Errorf("scene: object %q: %w", def.Name, err)
			}
			m.TexName = def.Texture
			o.Mesh = m
			if def.Texture != "" && textures != nil {
				o.Texture = textures.Resolve(def.Texture)
			}
		}
		s.Objects = append(s.Objects, o)
		s.byName[o.Name] = o
		defs[o] = def
	}

	// Second pass: link parents.
	for o, def := range defs {
		if def.Parent == "" {
			continue
		}
		p := s.byName[def.Parent]
		if p == nil {
			return nil, fmt.Errorf("scene: object %q: unknown parent %q", o.Name, def.Parent)
		}
		o.Parent = p
		p.Children = append(p.Children, o)
	}

	// Third pass: compose transforms root-down and bake geometry. Objects
	// never reached from a root are part of a parent cycle.
	baked := make(map[*Object]bool, len(s.Objects))
	for _, o := range s.Objects {
		if o.Parent == nil {
			bakeTree(o, mathutil.Mat4Identity(), defs, baked)
		}
	}
	for _, o := range s.Objects {
		if !baked[o] {
			return nil, fmt.Errorf("scene: object %q: parent cycle", o.Name)
		}
	}

	return s, nil
}

func bakeTree(o *Object, parent mathutil.Mat4, defs map[*Object]fileObject, baked map[*Object]bool) {
	def := defs[o]

	rot := mathutil.Mat3Mul(
		mathutil.Mat3Mul(
			mathutil.RotZ(mathutil.Deg2Rad(def.Rotation[2])),
			mathutil.RotY(mathutil.Deg2Rad(def.Rotation[1]))),
		mathutil.RotX(mathutil.Deg2Rad(def.Rotation[0])))
	scale := def.Scale
	if scale == 0 {
		scale = 1
	}
	world := mathutil.Mat4Mul(parent, mathutil.TRS(rot, scale, mathutil.Vec3(def.Position)))

	if o.Renderable() {
		bakeMesh(o, world)
	}
	baked[o] = true

	for _, c := range o.Children {
		bakeTree(c, world, defs, baked)
	}
}

// bakeMesh transforms mesh vertices and normals to world space in place and
// records the object's world AABB.
func bakeMesh(o *Object, world mathutil.Mat4) {
	m := o.Mesh
	rot := world.Rotation()

	min := mathutil.Vec3{}
	max := mathutil.Vec3{}
	for i, v := range m.Verts {
		t := world.MulPoint(mathutil.Vec3(v))
		m.Verts[i] = [3]float64(t)
		if i == 0 {
			min, max = t, t
		} else {
			min = min.Min(t)
			max = max.Max(t)
		}
	}
	for i, n := range m.Normals {
		// Uniform scale only, so rotating and renormalizing is exact.
		m.Normals[i] = [3]float64(rot.MulVec3(mathutil.Vec3(n)).Normalize())
	}

	o.bounds = BoundsFromMinMax(min, max)
	o.hasBounds = true
}
