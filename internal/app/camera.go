package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// initCamera frames the model from a slightly raised angle
func (app *App) initCamera() {
	distance := app.Model.size * 2.0
	if distance <= 0 {
		distance = 1
	}

	app.Camera.target = app.Model.center
	app.Camera.distance = distance
	app.Camera.angleX = 0.3
	app.Camera.angleY = 0.3

	app.Camera.defaultDist = distance
	app.Camera.defaultAngleX = 0.3
	app.Camera.defaultAngleY = 0.3

	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
	app.updateCamera()
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Model.center
}

// setCameraView looks at the model center from the given angles
func (app *App) setCameraView(angleX, angleY float32) {
	app.Camera.angleX = angleX
	app.Camera.angleY = angleY
	app.Camera.target = app.Model.center
}

// Preset views. Elevation stays just short of the poles so the up vector stays valid.
func (app *App) setCameraTopView()    { app.setCameraView(1.5, 0) }
func (app *App) setCameraBottomView() { app.setCameraView(-1.5, 0) }
func (app *App) setCameraFrontView()  { app.setCameraView(0, 0) }
func (app *App) setCameraBackView()   { app.setCameraView(0, math.Pi) }
func (app *App) setCameraLeftView()   { app.setCameraView(0, -math.Pi/2) }
func (app *App) setCameraRightView()  { app.setCameraView(0, math.Pi/2) }

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// rotateCamera orbits by a mouse delta, clamping the elevation
func (app *App) rotateCamera(delta rl.Vector2) {
	app.Camera.angleY += delta.X * 0.01
	app.Camera.angleX -= delta.Y * 0.01

	if app.Camera.angleX > 1.5 {
		app.Camera.angleX = 1.5
	}
	if app.Camera.angleX < -1.5 {
		app.Camera.angleX = -1.5
	}
}

// zoomCamera scales the orbit distance by a wheel step
func (app *App) zoomCamera(wheel float32) {
	app.Camera.distance *= 1.0 - wheel*0.05
	minDist := app.Model.size * 0.01
	if app.Camera.distance < minDist {
		app.Camera.distance = minDist
	}
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := app.Camera.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}
