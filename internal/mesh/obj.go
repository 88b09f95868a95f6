package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse reads a Wavefront OBJ file and returns a single merged mesh.
// Supported statements: v, vn, vt, f. Faces may reference positions,
// texcoords and normals (v, v/vt, v//vn, v/vt/vn); negative indices count
// back from the end of the respective array. Quads are kept as Polygon=4
// entries, larger faces are fan-triangulated. Everything else (groups,
// materials, smoothing) is ignored.
func Parse(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mesh: parse %s: %w", path, err)
	}
	return m, nil
}

// Decode parses OBJ data from a reader.
func Decode(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			x, y, z, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			m.Verts = append(m.Verts, [3]float64{x, y, z})
		case "vn":
			x, y, z, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			m.Normals = append(m.Normals, [3]float64{x, y, z})
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texcoord needs 2 components", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: bad texcoord", lineNo)
			}
			// OBJ uses a bottom-left UV origin, the sampler expects top-left.
			m.UVs = append(m.UVs, [2]float32{float32(u), float32(1 - v)})
		case "f":
			if err := m.appendFace(fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) appendFace(corners []string) error {
	n := len(corners)
	if n < 3 {
		return fmt.Errorf("face with %d corners", n)
	}

	vi := make([]int, n)
	ti := make([]int, n)
	ni := make([]int, n)
	for i, c := range corners {
		v, t, nn, err := m.parseCorner(c)
		if err != nil {
			return err
		}
		vi[i], ti[i], ni[i] = v, t, nn
	}

	if n == 4 {
		m.Tris = append(m.Tris, Triangle{
			Polygon: 4,
			VI:      [4]int{vi[0], vi[1], vi[2], vi[3]},
			TI:      [4]int{ti[0], ti[1], ti[2], ti[3]},
			NI:      [4]int{ni[0], ni[1], ni[2], ni[3]},
		})
		return nil
	}

	// Fan-triangulate
	for i := 1; i+1 < n; i++ {
		m.Tris = append(m.Tris, Triangle{
			Polygon: 3,
			VI:      [4]int{vi[0], vi[i], vi[i+1], -1},
			TI:      [4]int{ti[0], ti[i], ti[i+1], -1},
			NI:      [4]int{ni[0], ni[i], ni[i+1], -1},
		})
	}
	return nil
}

// parseCorner decodes one face corner "v", "v/vt", "v//vn" or "v/vt/vn"
// into zero-based indices. Missing references return -1.
func (m *Mesh) parseCorner(s string) (v, t, n int, err error) {
	t, n = -1, -1
	parts := strings.Split(s, "/")

	v, err = m.resolveIndex(parts[0], len(m.Verts))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("corner %q: %w", s, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		t, err = m.resolveIndex(parts[1], len(m.UVs))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("corner %q: %w", s, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		n, err = m.resolveIndex(parts[2], len(m.Normals))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("corner %q: %w", s, err)
		}
	}
	return v, t, n, nil
}

func (m *Mesh) resolveIndex(s string, length int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	if i < 0 {
		i = length + i // negative indices count from the end
	} else {
		i-- // OBJ indices are one-based
	}
	if i < 0 || i >= length {
		return 0, fmt.Errorf("index %s out of range", s)
	}
	return i, nil
}

func parseFloats3(fields []string) (x, y, z float64, err error) {
	if len(fields) < 3 {
		return 0, 0, 0, fmt.Errorf("need 3 components, have %d", len(fields))
	}
	x, err = strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return
	}
	y, err = strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return
	}
	z, err = strconv.ParseFloat(fields[2], 64)
	return
}
