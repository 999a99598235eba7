// Package stl reads STL triangle soups so they can be analyzed like generated
// meshes. STL carries no texture coordinates.
package stl

import (
	"github.com/golang/geo/r3"
	"github.com/philipparndt/sphereply/pkg/geometry"
	"github.com/philipparndt/sphereply/pkg/mesh"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// ToMesh returns an indexed mesh with three fresh vertices per triangle.
// Vertices are not welded and texture coordinates are zero.
func (m *Model) ToMesh() *mesh.Mesh {
	out := mesh.NewMesh()
	for _, tri := range m.Triangles {
		base := len(out.Vertices)
		for _, p := range [3]r3.Vector{tri.V1, tri.V2, tri.V3} {
			out.Vertices = append(out.Vertices, mesh.Vertex{Pos: p})
		}
		out.Triangles = append(out.Triangles, mesh.Triangle{base, base + 1, base + 2})
	}
	return out
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
