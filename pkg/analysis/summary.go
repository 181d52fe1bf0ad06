package analysis

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/philipparndt/meshpick/pkg/geometry"
	"github.com/philipparndt/meshpick/pkg/mesh"
)

// Summary contains the statistics shown next to a loaded mesh
type Summary struct {
	Name          string
	VertexCount   int
	FaceCount     int
	TriangleCount int
	EdgeCount     int
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh collects counts, extents and edge lengths of a mesh
func AnalyzeMesh(m *mesh.Mesh) *Summary {
	edges := m.Edges()
	s := &Summary{
		Name:          m.Name,
		VertexCount:   m.VertexCount(),
		FaceCount:     m.FaceCount(),
		TriangleCount: len(m.Triangles()),
		EdgeCount:     len(edges),
		BoundingBox:   m.BoundingBox(),
	}
	s.Dimensions = s.BoundingBox.Size()

	if len(edges) == 0 {
		return s
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	total := 0.0
	for _, e := range edges {
		length := m.Vertices[e[0]].Distance(m.Vertices[e[1]])
		minLength = math.Min(minLength, length)
		maxLength = math.Max(maxLength, length)
		total += length
	}
	s.MinEdgeLength = minLength
	s.MaxEdgeLength = maxLength
	s.AvgEdgeLength = total / float64(len(edges))
	return s
}

// Lines formats the summary for the HUD and the console
func (s *Summary) Lines() []string {
	lines := []string{
		fmt.Sprintf("Vertices: %s", humanize.Comma(int64(s.VertexCount))),
		fmt.Sprintf("Faces: %s (%s triangles)", humanize.Comma(int64(s.FaceCount)), humanize.Comma(int64(s.TriangleCount))),
		fmt.Sprintf("Edges: %s", humanize.Comma(int64(s.EdgeCount))),
		fmt.Sprintf("Size: %s", FormatDimensions(s.Dimensions)),
	}
	if s.EdgeCount > 0 {
		lines = append(lines, fmt.Sprintf("Edge length: min %s, avg %s, max %s",
			humanize.FtoaWithDigits(s.MinEdgeLength, 3),
			humanize.FtoaWithDigits(s.AvgEdgeLength, 3),
			humanize.FtoaWithDigits(s.MaxEdgeLength, 3),
		))
	}
	return lines
}

// FormatDimensions formats an extent as W x D x H
func FormatDimensions(v geometry.Vector3) string {
	return fmt.Sprintf("%s x %s x %s", humanize.FtoaWithDigits(v.X, 3), humanize.FtoaWithDigits(v.Y, 3), humanize.FtoaWithDigits(v.Z, 3))
}
