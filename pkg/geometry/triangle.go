package geometry

import "github.com/golang/geo/r3"

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	V1, V2, V3 r3.Vector
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 r3.Vector) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Normal returns the unnormalized face normal following the V1, V2, V3 winding
func (t Triangle) Normal() r3.Vector {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2)
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.Normal().Norm() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() r3.Vector {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// FacesInward reports whether the winding turns the normal toward the origin
func (t Triangle) FacesInward() bool {
	return t.Normal().Dot(t.Center()) < 0
}
