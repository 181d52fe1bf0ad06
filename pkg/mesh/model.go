package mesh

import (
	"github.com/philipparndt/meshpick/pkg/geometry"
)

// Face is a polygon given by 0-based vertex ids
type Face struct {
	Indices []int
}

// Mesh is the vertex and face list of one loaded file.
// The vertex id is the index into Vertices and follows file order.
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Faces    []Face
}

// NewMesh creates an empty mesh
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([]Face, 0),
	}
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// Triangles fans every face into triangles of vertex ids
func (m *Mesh) Triangles() [][3]int {
	triangles := make([][3]int, 0, len(m.Faces))
	for _, face := range m.Faces {
		for i := 1; i+1 < len(face.Indices); i++ {
			triangles = append(triangles, [3]int{face.Indices[0], face.Indices[i], face.Indices[i+1]})
		}
	}
	return triangles
}

// Edges returns the polygon edges without duplicates, in the order they are first seen.
// Each pair is stored with the lower id first.
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]struct{})
	edges := make([][2]int, 0)
	for _, face := range m.Faces {
		n := len(face.Indices)
		for i := 0; i < n; i++ {
			a, b := face.Indices[i], face.Indices[(i+1)%n]
			if a == b {
				continue
			}
			if b < a {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, key)
		}
	}
	return edges
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}
