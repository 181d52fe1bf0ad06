package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/meshpick/pkg/geometry"
)

var (
	// ErrMalformedRecord is returned for a vertex or face line with missing or unparsable fields
	ErrMalformedRecord = errors.New("malformed record")
	// ErrIndexOutOfRange is returned for a face that references a vertex the file does not define
	ErrIndexOutOfRange = errors.New("vertex index out of range")
	// ErrNoVertices is returned for a file without any vertex record
	ErrNoVertices = errors.New("mesh has no vertices")
)

// LoadError describes why a mesh file could not be loaded.
// Line is 0 when the failure is not tied to a specific line.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a Wavefront OBJ file and returns its mesh
func Load(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	m, err := parse(path, file)
	if err != nil {
		return nil, err
	}
	m.Name = filepath.Base(path)
	return m, nil
}

// Parse reads OBJ data from r. Name is used for the mesh name and in errors.
func Parse(name string, r io.Reader) (*Mesh, error) {
	m, err := parse(name, r)
	if err != nil {
		return nil, err
	}
	m.Name = name
	return m, nil
}

type faceRecord struct {
	line    int
	indices []int
}

func parse(path string, r io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	m := NewMesh("")

	var faces []faceRecord
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, &LoadError{Path: path, Line: lineNo, Err: err}
			}
			m.Vertices = append(m.Vertices, v)

		case "f":
			indices, err := parseFace(fields[1:], len(m.Vertices))
			if err != nil {
				return nil, &LoadError{Path: path, Line: lineNo, Err: err}
			}
			faces = append(faces, faceRecord{line: lineNo, indices: indices})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: path, Line: lineNo, Err: fmt.Errorf("read: %w", err)}
	}

	if len(m.Vertices) == 0 {
		return nil, &LoadError{Path: path, Err: ErrNoVertices}
	}

	// Positive indices may point forward, so they are checked once every vertex is known
	for _, f := range faces {
		for _, idx := range f.indices {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, &LoadError{
					Path: path,
					Line: f.line,
					Err:  fmt.Errorf("%w: %d (mesh has %d vertices)", ErrIndexOutOfRange, idx+1, len(m.Vertices)),
				}
			}
		}
		m.Faces = append(m.Faces, Face{Indices: f.indices})
	}

	return m, nil
}

// parseVertex reads x, y and z. Trailing w or color values are ignored.
func parseVertex(fields []string) (geometry.Vector3, error) {
	if len(fields) < 3 {
		return geometry.Vector3{}, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", ErrMalformedRecord, len(fields))
	}

	var coords [3]float64
	for i := range coords {
		c, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || math.IsNaN(c) || math.IsInf(c, 0) {
			return geometry.Vector3{}, fmt.Errorf("%w: vertex coordinate %q", ErrMalformedRecord, fields[i])
		}
		coords[i] = c
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

// parseFace converts face tokens to 0-based ids. Tokens may carry texture and
// normal references (i/t/n); only the vertex part is used. Negative indices
// count back from the vertices read so far.
func parseFace(fields []string, vertexCount int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: face needs at least 3 indices, got %d", ErrMalformedRecord, len(fields))
	}

	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		token, _, _ := strings.Cut(field, "/")
		idx, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: face index %q", ErrMalformedRecord, field)
		}

		switch {
		case idx > 0:
			indices = append(indices, idx-1)
		case idx < 0:
			resolved := vertexCount + idx
			if resolved < 0 {
				return nil, fmt.Errorf("%w: relative index %d with %d vertices read", ErrIndexOutOfRange, idx, vertexCount)
			}
			indices = append(indices, resolved)
		default:
			return nil, fmt.Errorf("%w: face index 0", ErrIndexOutOfRange)
		}
	}
	return indices, nil
}
