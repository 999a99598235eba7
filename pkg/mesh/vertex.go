package mesh

import (
	"math"

	"github.com/golang/geo/r3"
)

// SimilarityEpsilon is the summed absolute difference below which two
// vertices are treated as the same vertex
const SimilarityEpsilon = 1e-8

// Vertex is a position on the unit sphere with its texture coordinate
type Vertex struct {
	Pos r3.Vector
	S   float64 // texture U
	T   float64 // texture V
}

// NewVertex creates a new vertex
func NewVertex(x, y, z, s, t float64) Vertex {
	return Vertex{Pos: r3.Vector{X: x, Y: y, Z: z}, S: s, T: t}
}

// Distance returns |Δx|+|Δy|+|Δz|+|Δs|+|Δt| between two vertices
func (v Vertex) Distance(other Vertex) float64 {
	return math.Abs(v.Pos.X-other.Pos.X) +
		math.Abs(v.Pos.Y-other.Pos.Y) +
		math.Abs(v.Pos.Z-other.Pos.Z) +
		math.Abs(v.S-other.S) +
		math.Abs(v.T-other.T)
}

// IsSimilarTo reports whether both vertices fall within SimilarityEpsilon
func (v Vertex) IsSimilarTo(other Vertex) bool {
	return v.Distance(other) < SimilarityEpsilon
}
