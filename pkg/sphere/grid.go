// Package sphere generates equirectangular UV spheres as indexed meshes.
package sphere

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/philipparndt/sphereply/pkg/mesh"
)

// ErrInvalidGrid is returned when grid parameters are out of range
var ErrInvalidGrid = errors.New("invalid grid")

// Grid defines the longitude and latitude subdivision of a sphere
type Grid struct {
	Longitude int // subdivisions around the sphere
	Latitude  int // subdivisions from pole to pole
}

// NewGrid creates a new grid
func NewGrid(longitude, latitude int) Grid {
	return Grid{Longitude: longitude, Latitude: latitude}
}

// Validate checks that both subdivision counts are positive.
// The generators themselves do not validate.
func (g Grid) Validate() error {
	if g.Longitude < 1 {
		return fmt.Errorf("%w: longitude must be at least 1, got %d", ErrInvalidGrid, g.Longitude)
	}
	if g.Latitude < 1 {
		return fmt.Errorf("%w: latitude must be at least 1, got %d", ErrInvalidGrid, g.Latitude)
	}
	return nil
}

// NodeCount returns the number of sampled grid nodes
func (g Grid) NodeCount() int {
	return (g.Longitude + 1) * (g.Latitude + 1)
}

// CellCount returns the number of grid cells, each split into two triangles
func (g Grid) CellCount() int {
	return g.Longitude * g.Latitude
}

// Hemisphere selects which π-wide longitude band a half sphere covers
type Hemisphere int

const (
	// Left covers φ in [0, π]
	Left Hemisphere = 0
	// Right covers φ in [π, 2π]
	Right Hemisphere = 1
)

// Validate checks that the hemisphere is Left or Right
func (h Hemisphere) Validate() error {
	if h != Left && h != Right {
		return fmt.Errorf("%w: hemisphere must be 0 or 1, got %d", ErrInvalidGrid, int(h))
	}
	return nil
}

// ParseHemisphere accepts "left", "right", "0" or "1"
func ParseHemisphere(s string) (Hemisphere, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "0":
		return Left, nil
	case "right", "r", "1":
		return Right, nil
	default:
		return Left, fmt.Errorf("%w: unknown hemisphere %q", ErrInvalidGrid, s)
	}
}

func (h Hemisphere) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Hemisphere(%d)", int(h))
	}
}

// nodeFunc maps a grid node to its vertex.
// Sampling and triangulation share one nodeFunc so both passes evaluate
// identical floating point expressions.
type nodeFunc func(x, y int) mesh.Vertex

// wrapUV lifts texture coordinates that drifted below zero back into [0, 1].
// Values within -1e-8 of zero are left unchanged.
func wrapUV(uv float64) float64 {
	for uv < -1e-8 {
		uv += 1.0
	}
	return uv
}

// latitudeAngle returns θ for latitude step y: 0 at the top pole, π at the bottom
func (g Grid) latitudeAngle(y int) float64 {
	return math.Pi * float64(y) / float64(g.Latitude)
}

func position(theta, phi float64) (float64, float64, float64) {
	return math.Sin(theta) * math.Cos(phi),
		math.Cos(theta),
		math.Sin(theta) * math.Sin(phi)
}

// fullNode samples φ over [0, 2π]. t is not wrapped.
func fullNode(g Grid) nodeFunc {
	return func(x, y int) mesh.Vertex {
		phi := 2 * math.Pi * float64(x) / float64(g.Longitude)
		theta := g.latitudeAngle(y)

		s := 1.0 - phi/(2*math.Pi)
		t := 1.0 - theta/math.Pi

		px, py, pz := position(theta, phi)
		return mesh.NewVertex(px, py, pz, s, t)
	}
}

// halfNode samples φ over a π-wide band selected by h.
// s depends only on the base angle, so both halves share one texture layout.
func halfNode(g Grid, h Hemisphere) nodeFunc {
	return func(x, y int) mesh.Vertex {
		phiBase := math.Pi * float64(x) / float64(g.Longitude)
		phi := phiBase + float64(h)*math.Pi
		theta := g.latitudeAngle(y)

		s := wrapUV(1.0 - phiBase/math.Pi)
		t := wrapUV(1.0 - theta/math.Pi)

		px, py, pz := position(theta, phi)
		return mesh.NewVertex(px, py, pz, s, t)
	}
}
