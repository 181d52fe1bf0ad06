package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawAxes draws an orientation indicator in the bottom-right corner.
// Each world axis is drawn along its direction in the current view.
func (app *App) drawAxes() {
	const length = float32(40)
	const offset = float32(60)

	origin := rl.Vector2{
		X: float32(rl.GetScreenWidth()) - offset,
		Y: float32(rl.GetScreenHeight()) - offset,
	}

	cam := app.Camera.camera
	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	axes := []struct {
		dir   rl.Vector3
		name  string
		color rl.Color
	}{
		{rl.Vector3{X: 1}, "X", rl.Red},
		{rl.Vector3{Y: 1}, "Y", rl.Green},
		{rl.Vector3{Z: 1}, "Z", rl.Blue},
	}

	for _, axis := range axes {
		end := rl.Vector2{
			X: origin.X + rl.Vector3DotProduct(axis.dir, right)*length,
			Y: origin.Y - rl.Vector3DotProduct(axis.dir, up)*length,
		}
		rl.DrawLineEx(origin, end, 2, axis.color)

		// Push the label slightly past the line end
		labelPos := rl.Vector2Add(end, rl.Vector2Scale(rl.Vector2Normalize(rl.Vector2Subtract(end, origin)), 8))
		rl.DrawTextEx(app.UI.font, axis.name, rl.Vector2{X: labelPos.X - 4, Y: labelPos.Y - 6}, 14, 1, axis.color)
	}
}
