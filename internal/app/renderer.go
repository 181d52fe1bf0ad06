package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/meshpick/pkg/geometry"
	"github.com/philipparndt/meshpick/pkg/mesh"
)

// meshToRaylib converts a mesh to an unindexed raylib mesh with baked lighting.
// Faces are fan triangulated and flat shaded.
func meshToRaylib(m *mesh.Mesh) rl.Mesh {
	triangles := m.Triangles()
	triangleCount := len(triangles)
	vertexCount := triangleCount * 3

	out := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	colors := make([]uint8, vertexCount*4)

	lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

	idx := 0
	for _, tri := range triangles {
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		normal := b.Sub(a).Cross(c.Sub(a)).Normalize()

		// Both sides are lit since OBJ winding is not reliable
		lightIntensity := math.Max(0.3, math.Abs(normal.Dot(lightDir)))
		shade := uint8(211 * lightIntensity) // lightgray

		for _, v := range [3]geometry.Vector3{a, b, c} {
			vertices[idx*3+0] = float32(v.X)
			vertices[idx*3+1] = float32(v.Y)
			vertices[idx*3+2] = float32(v.Z)
			normals[idx*3+0] = float32(normal.X)
			normals[idx*3+1] = float32(normal.Y)
			normals[idx*3+2] = float32(normal.Z)
			colors[idx*4+0] = shade
			colors[idx*4+1] = shade
			colors[idx*4+2] = shade
			colors[idx*4+3] = 255
			idx++
		}
	}

	if vertexCount == 0 {
		return out
	}

	out.Vertices = &vertices[0]
	out.Normals = &normals[0]
	out.Colors = &colors[0]

	// Upload mesh data to GPU
	rl.UploadMesh(&out, false)
	return out
}

// drawSurface draws the filled mesh with backface culling disabled
func (app *App) drawSurface() {
	if app.Model.gpuMesh.VertexCount == 0 {
		return
	}
	rl.DisableBackfaceCulling()
	rl.DrawMesh(app.Model.gpuMesh, app.Model.material, rl.MatrixIdentity())
	rl.EnableBackfaceCulling()
}
