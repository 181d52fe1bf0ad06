package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/meshpick/pkg/geometry"
	"github.com/philipparndt/meshpick/pkg/mesh"
)

func TestAnalyzeMesh(t *testing.T) {
	src := "v 0 0 0\nv 3 0 0\nv 3 4 0\nv 0 4 0\nf 1 2 3 4\n"
	m, err := mesh.Parse("rect.obj", strings.NewReader(src))
	require.NoError(t, err)

	s := AnalyzeMesh(m)

	assert.Equal(t, "rect.obj", s.Name)
	assert.Equal(t, 4, s.VertexCount)
	assert.Equal(t, 1, s.FaceCount)
	assert.Equal(t, 2, s.TriangleCount)
	assert.Equal(t, 4, s.EdgeCount)
	assert.Equal(t, geometry.NewVector3(3, 4, 0), s.Dimensions)
	assert.InDelta(t, 3.0, s.MinEdgeLength, 1e-9)
	assert.InDelta(t, 4.0, s.MaxEdgeLength, 1e-9)
	assert.InDelta(t, 3.5, s.AvgEdgeLength, 1e-9)
}

func TestAnalyzePointCloud(t *testing.T) {
	m, err := mesh.Parse("points.obj", strings.NewReader("v 0 0 0\nv 1 1 1\n"))
	require.NoError(t, err)

	s := AnalyzeMesh(m)

	assert.Zero(t, s.EdgeCount)
	assert.Zero(t, s.AvgEdgeLength)
}

func TestLines(t *testing.T) {
	s := &Summary{
		VertexCount:   34834,
		FaceCount:     69451,
		TriangleCount: 69451,
		EdgeCount:     104288,
		Dimensions:    geometry.NewVector3(0.15, 0.1, 0.125),
		MinEdgeLength: 0.001,
		MaxEdgeLength: 0.012,
		AvgEdgeLength: 0.003,
	}

	assert.Equal(t, []string{
		"Vertices: 34,834",
		"Faces: 69,451 (69,451 triangles)",
		"Edges: 104,288",
		"Size: 0.15 x 0.1 x 0.125",
		"Edge length: min 0.001, avg 0.003, max 0.012",
	}, s.Lines())
}

func TestLinesWithoutEdges(t *testing.T) {
	s := &Summary{VertexCount: 2, Dimensions: geometry.NewVector3(1, 1, 1)}

	lines := s.Lines()
	require.Len(t, lines, 4)
	assert.NotContains(t, strings.Join(lines, "\n"), "Edge length")
}
