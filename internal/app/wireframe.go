package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawWireframe renders every unique polygon edge as a 3D line
func (app *App) drawWireframe() {
	wireframeColor := rl.NewColor(255, 255, 255, 160)
	vertices := app.Model.mesh.Vertices

	for _, e := range app.Model.edges {
		rl.DrawLine3D(toRaylib(vertices[e[0]]), toRaylib(vertices[e[1]]), wireframeColor)
	}
}
