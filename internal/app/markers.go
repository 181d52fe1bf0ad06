package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	markerColor    = rl.Pink
	highlightColor = rl.Red
)

// drawVertexMarkers draws a dot at every vertex in screen space, on top of the
// 3D scene. Positions come from the same projector the picker uses.
func (app *App) drawVertexMarkers() {
	proj := screenProjector{camera: app.Camera.camera}
	radius := app.Settings.MarkerRadius

	for _, v := range app.Model.mesh.Vertices {
		p, ok := proj.Project(v)
		if !ok {
			continue
		}
		rl.DrawCircleV(toVector2(p), radius, markerColor)
	}
}

// drawSelectedVertex highlights the vertex shown in the overlay
func (app *App) drawSelectedVertex() {
	selected, ok := app.Overlay.Selected()
	if !ok {
		return
	}

	p, visible := screenProjector{camera: app.Camera.camera}.Project(selected.Position)
	if !visible {
		return
	}
	center := toVector2(p)
	rl.DrawCircleV(center, app.Settings.HighlightRadius, highlightColor)
	rl.DrawCircleLines(int32(center.X), int32(center.Y), app.Settings.HighlightRadius+2, rl.White)
}
