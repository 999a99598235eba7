package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min r3.Vector
	Max r3.Vector
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: r3.Vector{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: r3.Vector{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point r3.Vector) {
	b.Min = r3.Vector{X: math.Min(b.Min.X, point.X), Y: math.Min(b.Min.Y, point.Y), Z: math.Min(b.Min.Z, point.Z)}
	b.Max = r3.Vector{X: math.Max(b.Max.X, point.X), Y: math.Max(b.Max.Y, point.Y), Z: math.Max(b.Max.Z, point.Z)}
}

// IsEmpty reports whether no point has been added
func (b BoundingBox) IsEmpty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() r3.Vector {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() r3.Vector {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Norm()
}
