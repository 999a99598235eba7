package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/sphereply/pkg/geometry"
	"github.com/philipparndt/sphereply/pkg/mesh"
)

// DegenerateArea is the area below which a triangle counts as collapsed
const DegenerateArea = 1e-12

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	Start      int
	End        int
	Length     float64
	TriangleID int
}

// Range is a closed interval of observed values
type Range struct {
	Min, Max float64
}

func newRange() Range {
	return Range{Min: math.MaxFloat64, Max: -math.MaxFloat64}
}

func (r *Range) extend(v float64) {
	r.Min = math.Min(r.Min, v)
	r.Max = math.Max(r.Max, v)
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	VertexCount       int
	TriangleCount     int
	BoundingBox       geometry.BoundingBox
	Dimensions        r3.Vector
	SurfaceArea       float64
	ZeroAreaTriangles int
	InwardTriangles   int
	EdgeCount         int
	MinEdgeLength     float64
	MaxEdgeLength     float64
	AvgEdgeLength     float64
	Radius            Range
	S                 Range
	T                 Range
	AllEdges          []EdgeInfo
}

// AnalyzeMesh performs comprehensive analysis on a mesh
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		VertexCount:   m.VertexCount(),
		TriangleCount: m.TriangleCount(),
		BoundingBox:   geometry.NewBoundingBox(),
		Radius:        newRange(),
		S:             newRange(),
		T:             newRange(),
		AllEdges:      make([]EdgeInfo, 0),
	}

	for _, v := range m.Vertices {
		result.BoundingBox.Extend(v.Pos)
		result.Radius.extend(v.Pos.Norm())
		result.S.extend(v.S)
		result.T.extend(v.T)
	}
	if !result.BoundingBox.IsEmpty() {
		result.Dimensions = result.BoundingBox.Size()
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i, t := range m.Triangles {
		tri := geometry.NewTriangle(m.Corners(t))

		area := tri.Area()
		result.SurfaceArea += area
		if area < DegenerateArea {
			result.ZeroAreaTriangles++
		} else if tri.FacesInward() {
			result.InwardTriangles++
		}

		lengths := tri.EdgeLengths()
		edges := [3][2]int{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
		for j, edge := range edges {
			length := lengths[j]

			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Start:      edge[0],
				End:        edge[1],
				Length:     length,
				TriangleID: i,
			})

			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	count = clampCount(count, len(edges))

	return edges[:count]
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	count = clampCount(count, len(edges))

	return edges[:count]
}

// FormatVector formats a 3D vector
func FormatVector(v r3.Vector) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatRange formats a range of values
func FormatRange(r Range) string {
	return fmt.Sprintf("[%.9f, %.9f]", r.Min, r.Max)
}

// clampCount limits a requested edge count to [0, n]
func clampCount(count, n int) int {
	return max(0, min(count, n))
}
