package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/meshpick/internal/config"
	"github.com/philipparndt/meshpick/internal/control"
	"github.com/philipparndt/meshpick/internal/hud"
	"github.com/philipparndt/meshpick/pkg/analysis"
	"github.com/philipparndt/meshpick/pkg/mesh"
)

// App is the raylib frontend. All fields are owned by the main loop.
type App struct {
	Settings    config.Settings
	Camera      CameraState
	Model       ModelData
	View        ViewSettings
	Interaction InteractionState
	UI          UIState

	Control *control.Controller
	Overlay *hud.Overlay
	Summary *analysis.Summary
}

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// ModelData holds the loaded mesh and its GPU resources
type ModelData struct {
	mesh     *mesh.Mesh
	edges    [][2]int
	gpuMesh  rl.Mesh
	material rl.Material
	center   rl.Vector3 // Bounding box center
	size     float32    // Max dimension
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showMarkers   bool
	showHelp      bool
}

// InteractionState holds mouse state between frames
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
}

// UIState holds UI-related state
type UIState struct {
	font rl.Font
}
