package sphere

import (
	"errors"

	"github.com/philipparndt/sphereply/pkg/mesh"
)

// ErrVertexNotFound means triangulation computed a corner the sampling pass never produced
var ErrVertexNotFound = errors.New("vertex not found")

// builder accumulates the vertex and triangle lists of one generation run
type builder struct {
	mesh *mesh.Mesh
}

func newBuilder() *builder {
	return &builder{mesh: mesh.NewMesh()}
}

// addOrGet returns the index of the first vertex similar to v, appending v if there is none
func (b *builder) addOrGet(v mesh.Vertex) int {
	if i := b.indexOf(v); i >= 0 {
		return i
	}
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	return len(b.mesh.Vertices) - 1
}

// find returns the index of the first vertex similar to v without inserting
func (b *builder) find(v mesh.Vertex) (int, error) {
	if i := b.indexOf(v); i >= 0 {
		return i, nil
	}
	return -1, ErrVertexNotFound
}

func (b *builder) indexOf(v mesh.Vertex) int {
	for i, existing := range b.mesh.Vertices {
		if existing.IsSimilarTo(v) {
			return i
		}
	}
	return -1
}

// addTriangle appends (a, b, c) unless it is degenerate or repeats an
// earlier triangle in the same index order. Reports whether it was added.
func (b *builder) addTriangle(i0, i1, i2 int) bool {
	tri := mesh.Triangle{i0, i1, i2}
	if tri.IsDegenerate() {
		return false
	}
	for _, existing := range b.mesh.Triangles {
		if existing == tri {
			return false
		}
	}
	b.mesh.Triangles = append(b.mesh.Triangles, tri)
	return true
}
