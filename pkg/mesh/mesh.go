package mesh

import (
	"github.com/golang/geo/r3"
)

// Triangle holds three zero-based indices into a mesh's vertex list
type Triangle [3]int

// IsDegenerate reports whether the triangle references fewer than three distinct vertices
func (t Triangle) IsDegenerate() bool {
	return t[0] == t[1] || t[0] == t[2] || t[1] == t[2]
}

// Mesh is an indexed triangle mesh with per-vertex texture coordinates
type Mesh struct {
	Vertices  []Vertex
	Triangles []Triangle
}

// NewMesh creates an empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		Vertices:  make([]Vertex, 0),
		Triangles: make([]Triangle, 0),
	}
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Corners returns the positions of the triangle's three vertices
func (m *Mesh) Corners(t Triangle) (r3.Vector, r3.Vector, r3.Vector) {
	return m.Vertices[t[0]].Pos, m.Vertices[t[1]].Pos, m.Vertices[t[2]].Pos
}
