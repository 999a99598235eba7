// Package ply reads and writes ASCII PLY meshes with x, y, z, s, t vertices.
package ply

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/sphereply/pkg/mesh"
)

// WriteFile writes the mesh to filename, replacing any existing file
func WriteFile(filename string, m *mesh.Mesh) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()

	if err := Write(file, m); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// Write serializes the mesh as ASCII PLY: the header, then every vertex in
// list order, then every triangle in list order
func Write(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	writeHeader(bw, m)

	buf := make([]byte, 0, 128)
	for _, v := range m.Vertices {
		buf = buf[:0]
		buf = appendFloat(buf, v.Pos.X)
		buf = append(buf, ' ')
		buf = appendFloat(buf, v.Pos.Y)
		buf = append(buf, ' ')
		buf = appendFloat(buf, v.Pos.Z)
		buf = append(buf, ' ')
		buf = appendFloat(buf, v.S)
		buf = append(buf, ' ')
		buf = appendFloat(buf, v.T)
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	for _, tri := range m.Triangles {
		buf = buf[:0]
		buf = append(buf, '3')
		for _, idx := range tri {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	// bufio.Writer keeps the first write error and reports it here
	return bw.Flush()
}

func writeHeader(w *bufio.Writer, m *mesh.Mesh) {
	fmt.Fprintln(w, "ply")
	fmt.Fprintln(w, "format ascii 1.0")
	fmt.Fprintf(w, "element vertex %d\n", m.VertexCount())
	fmt.Fprintln(w, "property float x")
	fmt.Fprintln(w, "property float y")
	fmt.Fprintln(w, "property float z")
	fmt.Fprintln(w, "property float s")
	fmt.Fprintln(w, "property float t")
	fmt.Fprintf(w, "element face %d\n", m.TriangleCount())
	fmt.Fprintln(w, "property list uchar uint vertex_indices")
	fmt.Fprintln(w, "end_header")
}

// appendFloat uses the shortest representation that round-trips
func appendFloat(buf []byte, f float64) []byte {
	return strconv.AppendFloat(buf, f, 'g', -1, 64)
}
