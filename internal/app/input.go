package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/meshpick/internal/control"
	"github.com/philipparndt/meshpick/pkg/pick"
)

// toggleModeKey switches between navigate and select mode
const toggleModeKey = rl.KeyP

// handleInput processes user input. It returns true when the user asked to quit.
func (app *App) handleInput() bool {
	// Ctrl+C quits from either mode
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
		return true
	}

	if rl.IsKeyPressed(toggleModeKey) {
		mode := app.Control.Toggle()
		fmt.Printf("Mode: %s\n", mode)
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		if app.Control.Escape() {
			return true
		}
		fmt.Printf("Mode: %s\n", app.Control.Mode())
	}

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.setCameraBottomView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		app.setCameraBackView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraLeftView()
	}
	if rl.IsKeyPressed(rl.KeyFour) {
		app.setCameraRightView()
	}

	// Display toggles
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyV) {
		app.View.showMarkers = !app.View.showMarkers
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		app.Interaction.mouseDownPos = rl.GetMousePosition()
		app.Interaction.mouseMoved = false
		// Pan if Shift is pressed (works in any mode)
		app.Interaction.isPanning = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	}

	// Camera panning with Shift + mouse drag or middle mouse button drag
	if (rl.IsMouseButtonDown(rl.MouseButtonLeft) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.doPan(delta)
		}
	} else if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		// Camera rotation with mouse drag, in both modes
		delta := rl.GetMouseDelta()
		if rl.Vector2Distance(app.Interaction.mouseDownPos, rl.GetMousePosition()) >= app.Settings.ClickTolerance {
			app.Interaction.mouseMoved = true
		}
		if delta.X != 0 || delta.Y != 0 {
			app.rotateCamera(delta)
		}
	}

	// A release close to the press position is a click
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		currentPos := rl.GetMousePosition()
		dragDistance := rl.Vector2Distance(app.Interaction.mouseDownPos, currentPos)
		if !app.Interaction.mouseMoved && !app.Interaction.isPanning && dragDistance < app.Settings.ClickTolerance {
			app.handleClick(currentPos)
		}
		app.Interaction.isPanning = false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.zoomCamera(wheel)
	}

	return false
}

// handleClick routes a click through the mode controller
func (app *App) handleClick(pos rl.Vector2) {
	if app.Control.Mode() != control.Select {
		return
	}

	click := pick.Point{X: float64(pos.X), Y: float64(pos.Y)}
	res, ok := app.Control.HandleClick(click, screenProjector{camera: app.Camera.camera})
	if !ok {
		fmt.Println("No vertex found close to the picked point.")
		return
	}

	fmt.Printf("Picked vertex %d / %d at %s\n", res.VertexID, app.Model.mesh.VertexCount()-1, res.Position)
}
