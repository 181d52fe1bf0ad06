package app

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/meshpick/internal/config"
	"github.com/philipparndt/meshpick/internal/control"
	"github.com/philipparndt/meshpick/internal/hud"
	"github.com/philipparndt/meshpick/pkg/analysis"
	"github.com/philipparndt/meshpick/pkg/mesh"
	"github.com/philipparndt/meshpick/pkg/pick"
)

// New wires the controller, overlay and summary for a loaded mesh.
// It does not touch the window, so a mesh can be prepared before raylib starts.
func New(m *mesh.Mesh, settings config.Settings) *App {
	overlay := hud.NewOverlay(m.VertexCount())
	bbox := m.BoundingBox()
	center := bbox.Center()

	return &App{
		Settings: settings,
		Model: ModelData{
			mesh:   m,
			edges:  m.Edges(),
			center: toRaylib(center),
			size:   float32(bbox.Size().MaxComponent()),
		},
		View: ViewSettings{
			showWireframe: true,
			showFilled:    true,
			showMarkers:   true,
			showHelp:      true,
		},
		Control: control.New(m.Vertices, pick.NewPicker(settings.PickRadius), overlay),
		Overlay: overlay,
		Summary: analysis.AnalyzeMesh(m),
	}
}

// Run opens the window and runs the event loop until the window is closed
func (app *App) Run() {
	slog.Info("Mesh loaded", "name", app.Summary.Name, "vertices", app.Summary.VertexCount, "faces", app.Summary.FaceCount)
	for _, line := range app.Summary.Lines() {
		fmt.Printf("  %s\n", line)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(app.Settings.WindowWidth, app.Settings.WindowHeight, "meshpick - "+app.Model.mesh.Name)
	defer rl.CloseWindow()
	rl.SetTargetFPS(app.Settings.TargetFPS)
	rl.SetExitKey(rl.KeyNull) // Esc is handled by handleInput

	app.UI.font = rl.GetFontDefault()
	app.Model.gpuMesh = meshToRaylib(app.Model.mesh)
	app.Model.material = rl.LoadMaterialDefault()
	app.initCamera()

	fmt.Print(
		"\nInitialization complete. Usage instructions:\n" +
			"1. When the window opens, press 'P' to switch to point selection mode.\n" +
			"2. Click on any vertex marker to show its ID and coordinates.\n" +
			"3. Press 'P' or Esc to return to navigation mode.\n\n",
	)

	for !rl.WindowShouldClose() {
		if app.handleInput() {
			break
		}
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showFilled {
			app.drawSurface()
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		rl.EndMode3D()

		// Markers are drawn in screen space after the 3D pass so they stay on top
		if app.View.showMarkers {
			app.drawVertexMarkers()
		}
		app.drawSelectedVertex()
		app.drawAxes()
		app.drawUI()

		rl.EndDrawing()
	}

	if app.Model.gpuMesh.VertexCount > 0 {
		rl.UnloadMesh(&app.Model.gpuMesh)
	}
	rl.UnloadMaterial(app.Model.material)
	slog.Debug("Window closed")
}
