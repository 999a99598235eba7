package sphere

import (
	"fmt"

	"github.com/philipparndt/sphereply/pkg/mesh"
)

// Full generates a whole sphere with φ spanning [0, 2π].
// The returned mesh is owned by the caller.
func Full(g Grid) (*mesh.Mesh, error) {
	return generate(g, fullNode(g))
}

// Half generates the half of the sphere selected by h.
// Each half is deduplicated on its own.
func Half(g Grid, h Hemisphere) (*mesh.Mesh, error) {
	return generate(g, halfNode(g, h))
}

func generate(g Grid, node nodeFunc) (*mesh.Mesh, error) {
	b := newBuilder()

	for x := 0; x <= g.Longitude; x++ {
		for y := 0; y <= g.Latitude; y++ {
			b.addOrGet(node(x, y))
		}
	}

	for x := 0; x < g.Longitude; x++ {
		for y := 0; y < g.Latitude; y++ {
			idx00, err := b.corner(node, x, y)
			if err != nil {
				return nil, err
			}
			idx10, err := b.corner(node, x, y+1)
			if err != nil {
				return nil, err
			}
			idx01, err := b.corner(node, x+1, y)
			if err != nil {
				return nil, err
			}
			idx11, err := b.corner(node, x+1, y+1)
			if err != nil {
				return nil, err
			}

			// counter-clockwise seen from inside the sphere
			b.addTriangle(idx00, idx10, idx01)
			b.addTriangle(idx11, idx01, idx10)
		}
	}

	return b.mesh, nil
}

func (b *builder) corner(node nodeFunc, x, y int) (int, error) {
	idx, err := b.find(node(x, y))
	if err != nil {
		return -1, fmt.Errorf("grid node (%d, %d): %w", x, y, err)
	}
	return idx, nil
}
