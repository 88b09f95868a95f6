package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, src string) *Mesh {
	t.Helper()
	m, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	return m
}

func TestDecodeTriangle(t *testing.T) {
	m := decode(t, `
# comment
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
vt 0.5 0.25
f 1/1/1 2/1/1 3/1/1
`)
	require.Len(t, m.Verts, 3)
	require.Len(t, m.Tris, 1)

	tri := m.Tris[0]
	assert.Equal(t, 3, tri.Polygon)
	assert.Equal(t, [4]int{0, 1, 2, -1}, tri.VI)
	assert.Equal(t, [4]int{0, 0, 0, -1}, tri.NI)

	// UV v is flipped to a top-left origin.
	assert.Equal(t, [2]float32{0.5, 0.75}, m.UVs[0])
}

func TestDecodeQuadStaysQuad(t *testing.T) {
	m := decode(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)
	require.Len(t, m.Tris, 1)
	assert.Equal(t, 4, m.Tris[0].Polygon)
	assert.Equal(t, [4]int{0, 1, 2, 3}, m.Tris[0].VI)
}

func TestDecodeFanTriangulatesPentagon(t *testing.T) {
	m := decode(t, `
v 0 0 0
v 1 0 0
v 2 1 0
v 1 2 0
v 0 1 0
f 1 2 3 4 5
`)
	require.Len(t, m.Tris, 3)
	assert.Equal(t, [4]int{0, 1, 2, -1}, m.Tris[0].VI)
	assert.Equal(t, [4]int{0, 2, 3, -1}, m.Tris[1].VI)
	assert.Equal(t, [4]int{0, 3, 4, -1}, m.Tris[2].VI)
}

func TestDecodeNegativeIndices(t *testing.T) {
	m := decode(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)
	require.Len(t, m.Tris, 1)
	assert.Equal(t, [4]int{0, 1, 2, -1}, m.Tris[0].VI)
}

func TestDecodeCornerForms(t *testing.T) {
	m := decode(t, `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1 2/1 3//1
`)
	tri := m.Tris[0]
	assert.Equal(t, [4]int{-1, 0, -1, -1}, tri.TI)
	assert.Equal(t, [4]int{-1, -1, 0, -1}, tri.NI)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"index out of range": "v 0 0 0\nf 1 2 3\n",
		"short vertex":       "v 1 2\n",
		"bad index":          "v 0 0 0\nf a 1 1\n",
		"degenerate face":    "v 0 0 0\nv 1 0 0\nf 1 2\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse("does-not-exist.obj")
	assert.Error(t, err)
}
