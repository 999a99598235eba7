package sphere

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/philipparndt/sphereply/pkg/mesh"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func mustFull(t *testing.T, longitude, latitude int) *mesh.Mesh {
	t.Helper()
	m, err := Full(NewGrid(longitude, latitude))
	if err != nil {
		t.Fatalf("Full(%d, %d) failed: %v", longitude, latitude, err)
	}
	return m
}

func mustHalf(t *testing.T, longitude, latitude int, h Hemisphere) *mesh.Mesh {
	t.Helper()
	m, err := Half(NewGrid(longitude, latitude), h)
	if err != nil {
		t.Fatalf("Half(%d, %d, %v) failed: %v", longitude, latitude, h, err)
	}
	return m
}

func TestFullSmallestGrid(t *testing.T) {
	m := mustFull(t, 1, 1)

	// x outer, y inner: (0,0) (0,1) (1,0) (1,1).
	// The pole nodes share a position but differ in s, so nothing merges.
	wantVertices := []mesh.Vertex{
		mesh.NewVertex(0, 1, 0, 1, 1),
		mesh.NewVertex(0, -1, 0, 1, 0),
		mesh.NewVertex(0, 1, 0, 0, 1),
		mesh.NewVertex(0, -1, 0, 0, 0),
	}
	if diff := cmp.Diff(wantVertices, m.Vertices, approx); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}

	wantTriangles := []mesh.Triangle{{0, 1, 2}, {3, 2, 1}}
	if diff := cmp.Diff(wantTriangles, m.Triangles); diff != "" {
		t.Errorf("triangles mismatch (-want +got):\n%s", diff)
	}
}

func TestHalfSmallestGrid(t *testing.T) {
	tests := []struct {
		h    Hemisphere
		want []mesh.Vertex
	}{
		{Left, []mesh.Vertex{
			mesh.NewVertex(0, 1, 0, 1, 1),
			mesh.NewVertex(0, -1, 0, 1, 0),
			mesh.NewVertex(0, 1, 0, 0, 1),
			mesh.NewVertex(0, -1, 0, 0, 0),
		}},
		{Right, []mesh.Vertex{
			mesh.NewVertex(0, 1, 0, 1, 1),
			mesh.NewVertex(0, -1, 0, 1, 0),
			mesh.NewVertex(0, 1, 0, 0, 1),
			mesh.NewVertex(0, -1, 0, 0, 0),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.h.String(), func(t *testing.T) {
			m := mustHalf(t, 1, 1, tt.h)
			if diff := cmp.Diff(tt.want, m.Vertices, approx); diff != "" {
				t.Errorf("vertices mismatch (-want +got):\n%s", diff)
			}
			wantTriangles := []mesh.Triangle{{0, 1, 2}, {3, 2, 1}}
			if diff := cmp.Diff(wantTriangles, m.Triangles); diff != "" {
				t.Errorf("triangles mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFullPoleRowsDoNotMerge(t *testing.T) {
	const longitude, latitude = 4, 4
	m := mustFull(t, longitude, latitude)
	g := NewGrid(longitude, latitude)

	if got := m.VertexCount(); got != g.NodeCount() {
		t.Errorf("expected %d vertices, got %d", g.NodeCount(), got)
	}
	if got := m.TriangleCount(); got != 2*g.CellCount() {
		t.Errorf("expected %d triangles, got %d", 2*g.CellCount(), got)
	}

	// Top pole nodes keep their own index because s differs along x.
	for x := 0; x <= longitude; x++ {
		idx := x * (latitude + 1)
		v := m.Vertices[idx]
		if v.Pos.Sub(r3.Vector{Y: 1}).Norm() > 1e-12 {
			t.Errorf("vertex %d: expected top pole, got %v", idx, v.Pos)
		}
		wantS := 1 - float64(x)/longitude
		if math.Abs(v.S-wantS) > 1e-12 {
			t.Errorf("vertex %d: expected s=%v, got %v", idx, wantS, v.S)
		}
	}
}

func TestGeneratedCounts(t *testing.T) {
	full := func(g Grid) (*mesh.Mesh, error) { return Full(g) }
	left := func(g Grid) (*mesh.Mesh, error) { return Half(g, Left) }
	right := func(g Grid) (*mesh.Mesh, error) { return Half(g, Right) }

	tests := []struct {
		name      string
		grid      Grid
		generate  func(Grid) (*mesh.Mesh, error)
		vertices  int
		triangles int
	}{
		{"full 2x1", NewGrid(2, 1), full, 6, 4},
		{"full 3x3", NewGrid(3, 3), full, 16, 18},
		{"full 64x32", NewGrid(64, 32), full, 2145, 4096},
		{"left 4x4", NewGrid(4, 4), left, 25, 32},
		{"right 4x4", NewGrid(4, 4), right, 25, 32},
		{"left 64x64", NewGrid(64, 64), left, 4225, 8192},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no node merges and no cell collapses, so the grid predicts the counts
			if tt.grid.NodeCount() != tt.vertices || 2*tt.grid.CellCount() != tt.triangles {
				t.Fatalf("grid predicts %d nodes and %d cells, table says %d vertices and %d triangles",
					tt.grid.NodeCount(), tt.grid.CellCount(), tt.vertices, tt.triangles)
			}

			m, err := tt.generate(tt.grid)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			if m.VertexCount() != tt.vertices {
				t.Errorf("expected %d vertices, got %d", tt.vertices, m.VertexCount())
			}
			if m.TriangleCount() != tt.triangles {
				t.Errorf("expected %d triangles, got %d", tt.triangles, m.TriangleCount())
			}
		})
	}
}

func TestVerticesOnUnitSphere(t *testing.T) {
	meshes := map[string]*mesh.Mesh{
		"full":  mustFull(t, 16, 8),
		"left":  mustHalf(t, 16, 16, Left),
		"right": mustHalf(t, 16, 16, Right),
	}
	for name, m := range meshes {
		for i, v := range m.Vertices {
			if math.Abs(v.Pos.Norm2()-1) > 1e-9 {
				t.Errorf("%s vertex %d: x²+y²+z² = %v, want 1", name, i, v.Pos.Norm2())
			}
			if v.S < -1e-8 || v.S > 1 {
				t.Errorf("%s vertex %d: s = %v out of range", name, i, v.S)
			}
			if v.T < -1e-8 || v.T > 1 {
				t.Errorf("%s vertex %d: t = %v out of range", name, i, v.T)
			}
		}
	}
}

func TestTrianglesValid(t *testing.T) {
	m := mustFull(t, 12, 6)

	seen := make(map[mesh.Triangle]bool)
	for i, tri := range m.Triangles {
		if tri.IsDegenerate() {
			t.Errorf("triangle %d is degenerate: %v", i, tri)
		}
		if seen[tri] {
			t.Errorf("triangle %d repeats an earlier triangle: %v", i, tri)
		}
		seen[tri] = true
		for _, idx := range tri {
			if idx < 0 || idx >= m.VertexCount() {
				t.Errorf("triangle %d references vertex %d out of range", i, idx)
			}
		}
	}
}

func TestTrianglesFaceInward(t *testing.T) {
	m := mustFull(t, 8, 8)

	for i, tri := range m.Triangles {
		a, b, c := m.Corners(tri)
		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Norm() < 1e-12 {
			// zero-area fan triangle at a pole
			continue
		}
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		if normal.Dot(centroid) >= 0 {
			t.Errorf("triangle %d %v faces outward", i, tri)
		}
	}
}

func TestHalfSymmetry(t *testing.T) {
	const longitude, latitude = 8, 6
	left := mustHalf(t, longitude, latitude, Left)
	right := mustHalf(t, longitude, latitude, Right)

	if left.VertexCount() != right.VertexCount() {
		t.Fatalf("vertex counts differ: %d vs %d", left.VertexCount(), right.VertexCount())
	}

	// Node (x, y) has index x*(latitude+1)+y since no nodes merge.
	for x := 0; x <= longitude; x++ {
		for y := 0; y <= latitude; y++ {
			l := left.Vertices[x*(latitude+1)+y].Pos
			r := right.Vertices[(longitude-x)*(latitude+1)+y].Pos
			mirrored := r3.Vector{X: r.X, Y: r.Y, Z: -r.Z}
			if l.Sub(mirrored).Norm() > 1e-9 {
				t.Errorf("node (%d, %d): left %v is not the z-reflection of right %v", x, y, l, r)
			}
		}
	}
}

func TestHalfTextureIndependentOfHemisphere(t *testing.T) {
	left := mustHalf(t, 6, 4, Left)
	right := mustHalf(t, 6, 4, Right)

	for i := range left.Vertices {
		if left.Vertices[i].S != right.Vertices[i].S || left.Vertices[i].T != right.Vertices[i].T {
			t.Errorf("vertex %d: texture differs between hemispheres: (%v, %v) vs (%v, %v)",
				i, left.Vertices[i].S, left.Vertices[i].T, right.Vertices[i].S, right.Vertices[i].T)
		}
	}
	if diff := cmp.Diff(left.Triangles, right.Triangles); diff != "" {
		t.Errorf("triangles differ between hemispheres (-left +right):\n%s", diff)
	}
}

func TestFullDeterministic(t *testing.T) {
	a := mustFull(t, 10, 5)
	b := mustFull(t, 10, 5)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated generation differs (-first +second):\n%s", diff)
	}
}

func TestWrapUV(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{1, 1},
		{0, 0},
		{-1e-9, -1e-9},
		{-0.25, 0.75},
		{-1.25, 0.75},
	}
	for _, tt := range tests {
		if got := wrapUV(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("wrapUV(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGridValidate(t *testing.T) {
	tests := []struct {
		grid    Grid
		wantErr bool
	}{
		{NewGrid(1, 1), false},
		{NewGrid(64, 32), false},
		{NewGrid(0, 1), true},
		{NewGrid(1, 0), true},
		{NewGrid(-3, 4), true},
	}
	for _, tt := range tests {
		err := tt.grid.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.grid, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("Validate(%+v) error %v is not ErrInvalidGrid", tt.grid, err)
		}
	}

	if err := Hemisphere(2).Validate(); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid for hemisphere 2, got %v", err)
	}
	if err := Right.Validate(); err != nil {
		t.Errorf("unexpected error for right hemisphere: %v", err)
	}
}

func TestParseHemisphere(t *testing.T) {
	tests := []struct {
		in      string
		want    Hemisphere
		wantErr bool
	}{
		{"left", Left, false},
		{"Right", Right, false},
		{" 0 ", Left, false},
		{"1", Right, false},
		{"up", Left, true},
		{"2", Left, true},
	}
	for _, tt := range tests {
		got, err := ParseHemisphere(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHemisphere(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("ParseHemisphere(%q) error %v is not ErrInvalidGrid", tt.in, err)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseHemisphere(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
