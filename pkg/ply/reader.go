package ply

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/sphereply/pkg/mesh"
)

var (
	// ErrNotPLY is returned when the file does not start with the ply signature
	ErrNotPLY = errors.New("not a PLY file")
	// ErrUnsupportedFormat is returned for binary PLY or versions other than 1.0
	ErrUnsupportedFormat = errors.New("unsupported PLY format")
	// ErrUnsupportedLayout is returned when vertex properties are not x y z [nx ny nz] s t
	ErrUnsupportedLayout = errors.New("unsupported vertex layout")
	// ErrMalformed is returned for header or body lines that cannot be parsed
	ErrMalformed = errors.New("malformed PLY")
)

type element struct {
	name       string
	count      int
	properties []string
	hasList    bool
}

// vertexProperties are the columns kept from every vertex line, in Vertex field order
var vertexProperties = [5]string{"x", "y", "z", "s", "t"}

// columns maps property names to their column in a vertex line
type columns map[string]int

// Parse reads an ASCII PLY file and returns its mesh
func Parse(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// Read parses an ASCII PLY stream. Vertex elements must carry x, y, z, s
// and t, optionally with nx, ny, nz which are discarded. Faces must be
// triangles. Elements other than vertex and face are skipped.
func Read(reader io.Reader) (*mesh.Mesh, error) {
	p := &parser{scanner: bufio.NewScanner(reader)}

	elements, err := p.readHeader()
	if err != nil {
		return nil, err
	}

	if !hasElement(elements, "vertex") {
		return nil, fmt.Errorf("%w: header has no vertex element", ErrMalformed)
	}

	model := mesh.NewMesh()
	var vertexCount int
	for _, el := range elements {
		switch el.name {
		case "vertex":
			cols, err := vertexColumns(el)
			if err != nil {
				return nil, err
			}
			if err := p.readVertices(model, el.count, cols); err != nil {
				return nil, err
			}
			vertexCount = el.count

		case "face":
			if !el.hasList {
				return nil, fmt.Errorf("%w: face element has no vertex index list", ErrMalformed)
			}
			if err := p.readFaces(model, el.count, vertexCount); err != nil {
				return nil, err
			}

		default:
			if err := p.skip(el.count); err != nil {
				return nil, err
			}
		}
	}

	return model, nil
}

type parser struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the fields of the next line
func (p *parser) next() ([]string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading PLY: %w", err)
		}
		return nil, fmt.Errorf("line %d: %w", p.line+1, io.ErrUnexpectedEOF)
	}
	p.line++
	return strings.Fields(p.scanner.Text()), nil
}

func (p *parser) errorf(err error, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", p.line, err, fmt.Sprintf(format, args...))
}

func (p *parser) readHeader() ([]element, error) {
	fields, err := p.next()
	if err != nil {
		return nil, err
	}
	if len(fields) != 1 || fields[0] != "ply" {
		return nil, p.errorf(ErrNotPLY, "missing signature")
	}

	fields, err = p.next()
	if err != nil {
		return nil, err
	}
	if len(fields) != 3 || fields[0] != "format" {
		return nil, p.errorf(ErrNotPLY, "missing format line")
	}
	if fields[1] != "ascii" {
		return nil, p.errorf(ErrUnsupportedFormat, "format type %s", fields[1])
	}
	if fields[2] != "1.0" {
		return nil, p.errorf(ErrUnsupportedFormat, "version %s", fields[2])
	}

	var elements []element
	for {
		fields, err := p.next()
		if err != nil {
			return nil, err
		}
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "end_header":
			return elements, nil

		case "comment", "obj_info":

		case "element":
			if len(fields) != 3 {
				return nil, p.errorf(ErrMalformed, "element needs a name and a count")
			}
			count, err := strconv.Atoi(fields[2])
			if err != nil || count < 0 {
				return nil, p.errorf(ErrMalformed, "element %s count %q", fields[1], fields[2])
			}
			if fields[1] == "vertex" && count == 0 {
				return nil, p.errorf(ErrMalformed, "element vertex has no vertices")
			}
			elements = append(elements, element{name: fields[1], count: count})

		case "property":
			if len(elements) == 0 {
				return nil, p.errorf(ErrMalformed, "property before any element")
			}
			current := &elements[len(elements)-1]
			if len(fields) >= 2 && fields[1] == "list" {
				if len(fields) != 5 {
					return nil, p.errorf(ErrMalformed, "list property needs count type, index type and name")
				}
				current.hasList = true
				current.properties = append(current.properties, fields[4])
				continue
			}
			if len(fields) != 3 {
				return nil, p.errorf(ErrMalformed, "property needs a type and a name")
			}
			current.properties = append(current.properties, fields[2])

		default:
			return nil, p.errorf(ErrMalformed, "unknown header keyword %q", fields[0])
		}
	}
}

// vertexColumns accepts x y z s t with or without the full nx ny nz triple
func vertexColumns(el element) (columns, error) {
	if el.hasList {
		return nil, fmt.Errorf("%w: list property on vertex element", ErrUnsupportedLayout)
	}

	cols := make(columns)
	for i, name := range el.properties {
		if _, dup := cols[name]; dup {
			return nil, fmt.Errorf("%w: duplicate property %s", ErrUnsupportedLayout, name)
		}
		cols[name] = i
	}

	for _, name := range vertexProperties {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing property %s", ErrUnsupportedLayout, name)
		}
	}

	normals := 0
	for _, name := range []string{"nx", "ny", "nz"} {
		if _, ok := cols[name]; ok {
			normals++
		}
	}
	if normals != 0 && normals != 3 {
		return nil, fmt.Errorf("%w: incomplete normal", ErrUnsupportedLayout)
	}

	return cols, nil
}

func (p *parser) readVertices(model *mesh.Mesh, count int, cols columns) error {
	width := len(cols)
	for i := 0; i < count; i++ {
		fields, err := p.next()
		if err != nil {
			return err
		}
		if len(fields) != width {
			return p.errorf(ErrMalformed, "vertex %d has %d values, expected %d", i, len(fields), width)
		}

		var values [5]float64
		for j, name := range vertexProperties {
			f, err := strconv.ParseFloat(fields[cols[name]], 64)
			if err != nil {
				return p.errorf(ErrMalformed, "vertex %d property %s: %v", i, name, err)
			}
			values[j] = f
		}

		model.Vertices = append(model.Vertices,
			mesh.NewVertex(values[0], values[1], values[2], values[3], values[4]))
	}
	return nil
}

func (p *parser) readFaces(model *mesh.Mesh, count, vertexCount int) error {
	for i := 0; i < count; i++ {
		fields, err := p.next()
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			return p.errorf(ErrMalformed, "face %d is empty", i)
		}
		if fields[0] != "3" {
			return p.errorf(ErrMalformed, "face %d has %s indices, only triangles are supported", i, fields[0])
		}
		if len(fields) != 4 {
			return p.errorf(ErrMalformed, "face %d has %d indices, expected 3", i, len(fields)-1)
		}

		var tri mesh.Triangle
		for j := 0; j < 3; j++ {
			idx, err := strconv.Atoi(fields[j+1])
			if err != nil {
				return p.errorf(ErrMalformed, "face %d index %q", i, fields[j+1])
			}
			if idx < 0 || idx >= vertexCount {
				return p.errorf(ErrMalformed, "face %d index %d out of range [0, %d)", i, idx, vertexCount)
			}
			tri[j] = idx
		}
		model.Triangles = append(model.Triangles, tri)
	}
	return nil
}

func (p *parser) skip(count int) error {
	for i := 0; i < count; i++ {
		if _, err := p.next(); err != nil {
			return err
		}
	}
	return nil
}

func hasElement(elements []element, name string) bool {
	for _, el := range elements {
		if el.name == name {
			return true
		}
	}
	return false
}
