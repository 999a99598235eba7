// Package uvmap draws a mesh's triangles in texture space, for checking how
// an equirectangular texture will wrap onto the mesh.
package uvmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/philipparndt/sphereply/pkg/mesh"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ErrUnsupportedImage is returned by WriteFile for extensions other than .png and .webp
var ErrUnsupportedImage = errors.New("unsupported image format")

// Options controls the preview image
type Options struct {
	Size        int     // output width and height in pixels
	LineWidth   float32 // edge width in output pixels
	Supersample int     // render scale before downsampling, 1 disables
	Line        color.Color
	Background  color.Color
}

// DefaultOptions returns a 1024 pixel preview with black edges on white
func DefaultOptions() Options {
	return Options{
		Size:        1024,
		LineWidth:   1,
		Supersample: 2,
		Line:        color.Black,
		Background:  color.White,
	}
}

type point struct {
	x, y float32
}

// Render draws every triangle edge at (s, 1-t), so t=1 is the top row of the image
func Render(m *mesh.Mesh, opts Options) *image.RGBA {
	scale := opts.Supersample
	if scale < 1 {
		scale = 1
	}
	size := opts.Size * scale
	width := opts.LineWidth * float32(scale)
	margin := width

	project := func(v mesh.Vertex) point {
		extent := float32(size) - 2*margin
		return point{
			x: margin + float32(v.S)*extent,
			y: margin + float32(1-v.T)*extent,
		}
	}

	z := vector.NewRasterizer(size, size)
	for _, tri := range m.Triangles {
		a := project(m.Vertices[tri[0]])
		b := project(m.Vertices[tri[1]])
		c := project(m.Vertices[tri[2]])
		stroke(z, a, b, width)
		stroke(z, b, c, width)
		stroke(z, c, a, width)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	z.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Line), image.Point{})

	if scale == 1 {
		return canvas
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out
}

// stroke adds the edge a-b as a quad of the given width. Every quad has the
// same orientation so overlapping edges never cancel.
func stroke(z *vector.Rasterizer, a, b point, width float32) {
	dx, dy := b.x-a.x, b.y-a.y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2

	z.MoveTo(a.x+nx, a.y+ny)
	z.LineTo(b.x+nx, b.y+ny)
	z.LineTo(b.x-nx, b.y-ny)
	z.LineTo(a.x-nx, a.y-ny)
	z.ClosePath()
}

// WriteFile encodes img as PNG or lossless WebP depending on the extension
func WriteFile(filename string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".png" && ext != ".webp" {
		return fmt.Errorf("%w: %s (expected .png or .webp)", ErrUnsupportedImage, ext)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if ext == ".webp" {
		if err := nativewebp.Encode(file, img, nil); err != nil {
			return fmt.Errorf("WebP encode: %w", err)
		}
		return nil
	}

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("PNG encode: %w", err)
	}
	return nil
}
