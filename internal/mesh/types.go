package mesh

// Triangle holds polygon type and index triples into vertex/normal/texcoord arrays.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Triangle struct {
	Polygon int
	VI      [4]int
	NI      [4]int
	TI      [4]int
}

// Mesh holds geometry for one renderable object. Vertex positions are
// mutable: the scene loader bakes world transforms into them in place.
type Mesh struct {
	Verts   [][3]float64
	Normals [][3]float64
	UVs     [][2]float32
	Tris    []Triangle
	TexName string // diffuse texture stem referenced by the scene file
}
