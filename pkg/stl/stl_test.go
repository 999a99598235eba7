package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/philipparndt/sphereply/pkg/geometry"
)

func toFloat32(v r3.Vector) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

// encodeBinary produces a binary STL with zero normals
func encodeBinary(t *testing.T, name string, tris []geometry.Triangle) []byte {
	t.Helper()

	var buf bytes.Buffer
	var header [headerSize]byte
	copy(header[:], name)
	buf.Write(header[:])

	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(tris))); err != nil {
		t.Fatalf("failed to encode count: %v", err)
	}
	for _, tri := range tris {
		f := facet{V1: toFloat32(tri.V1), V2: toFloat32(tri.V2), V3: toFloat32(tri.V3)}
		if err := binary.Write(&buf, binary.LittleEndian, &f); err != nil {
			t.Fatalf("failed to encode facet: %v", err)
		}
	}
	return buf.Bytes()
}

// encodeBinaryCount writes tris behind a header that claims count triangles
func encodeBinaryCount(t *testing.T, count uint32, tris []geometry.Triangle) []byte {
	t.Helper()
	data := encodeBinary(t, "", tris)
	binary.LittleEndian.PutUint32(data[headerSize:], count)
	return data
}

func unitTriangles() []geometry.Triangle {
	return []geometry.Triangle{
		geometry.NewTriangle(r3.Vector{}, r3.Vector{X: 1}, r3.Vector{Y: 1}),
		geometry.NewTriangle(r3.Vector{X: 1}, r3.Vector{X: 1, Y: 1}, r3.Vector{Y: 1}),
		geometry.NewTriangle(r3.Vector{Z: -2}, r3.Vector{X: 0.5, Z: -2}, r3.Vector{Y: 0.25, Z: -2}),
	}
}

func TestParseBinary(t *testing.T) {
	tris := unitTriangles()
	data := encodeBinary(t, "unit quad", tris)
	if len(data) != headerSize+4+facetSize*len(tris) {
		t.Fatalf("test encoder produced %d bytes", len(data))
	}

	path := filepath.Join(t.TempDir(), "quad.stl")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	model, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if model.Name != "unit quad" {
		t.Errorf("expected name %q, got %q", "unit quad", model.Name)
	}
	if model.TriangleCount() != len(tris) {
		t.Fatalf("expected %d triangles, got %d", len(tris), model.TriangleCount())
	}
	for i, tri := range model.Triangles {
		if tri != tris[i] {
			t.Errorf("triangle %d: got %v, want %v", i, tri, tris[i])
		}
	}

	bbox := model.BoundingBox()
	if bbox.Min != (r3.Vector{Z: -2}) || bbox.Max != (r3.Vector{X: 1, Y: 1}) {
		t.Errorf("unexpected bounding box %v", bbox)
	}
	if area := model.SurfaceArea(); math.Abs(area-(1+0.0625)) > 1e-12 {
		t.Errorf("expected area 1.0625, got %f", area)
	}
}

func TestBinaryHeaderStartingWithSolid(t *testing.T) {
	data := encodeBinary(t, "solid but binary", unitTriangles()[:1])
	if isASCII(data) {
		t.Fatal("binary file with solid header detected as ASCII")
	}

	model, err := parseBinary(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parseBinary failed: %v", err)
	}
	if model.TriangleCount() != 1 {
		t.Errorf("expected 1 triangle, got %d", model.TriangleCount())
	}
}

func TestParseTruncatedBinary(t *testing.T) {
	data := encodeBinary(t, "", unitTriangles())
	if _, err := parseBinary(bytes.NewReader(data[:len(data)-10])); err == nil {
		t.Error("expected error for truncated file")
	}
}

func TestParseRejectsOversizedCount(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"huge count with no facets", encodeBinaryCount(t, math.MaxUint32, nil)},
		{"count one larger than data", encodeBinaryCount(t, 4, unitTriangles())},
		{"short header", make([]byte, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.stl")
			if err := os.WriteFile(path, tt.data, 0644); err != nil {
				t.Fatalf("failed to write file: %v", err)
			}
			if _, err := Parse(path); !errors.Is(err, ErrTruncated) {
				t.Errorf("expected ErrTruncated, got %v", err)
			}
		})
	}

	// Readers without a known size fail on the first missing facet
	data := encodeBinaryCount(t, math.MaxUint32, nil)
	if _, err := parseBinary(bytes.NewReader(data)); err == nil {
		t.Error("expected error for missing facets")
	}
}

func TestParseASCII(t *testing.T) {
	content := `solid test cube
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
endsolid test cube
`
	path := filepath.Join(t.TempDir(), "ascii.stl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	model, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if model.Name != "test cube" {
		t.Errorf("expected name 'test cube', got %q", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", model.TriangleCount())
	}
	if area := model.SurfaceArea(); math.Abs(area-0.5) > 1e-12 {
		t.Errorf("expected area 0.5, got %f", area)
	}
}

func TestParseASCIIErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"short vertex", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0\nendloop\nendfacet\n"},
		{"bad number", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 a 0\nendloop\nendfacet\n"},
		{"two vertices", "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseASCII(bytes.NewReader([]byte(tt.content))); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestToMesh(t *testing.T) {
	model := NewModel("pair")
	for _, tri := range unitTriangles()[:2] {
		model.AddTriangle(tri)
	}

	m := model.ToMesh()
	if m.VertexCount() != 6 || m.TriangleCount() != 2 {
		t.Fatalf("expected 6 vertices and 2 triangles, got %d and %d", m.VertexCount(), m.TriangleCount())
	}

	a, b, c := m.Corners(m.Triangles[1])
	if geometry.NewTriangle(a, b, c) != model.Triangles[1] {
		t.Errorf("triangle 1 corners differ from the model")
	}
	for i, v := range m.Vertices {
		if v.S != 0 || v.T != 0 {
			t.Errorf("vertex %d: expected zero texture coordinates, got (%f, %f)", i, v.S, v.T)
		}
	}
}
