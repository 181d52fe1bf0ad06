package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/meshpick/internal/control"
	"github.com/philipparndt/meshpick/version"
)

// drawUI draws the title, overlay, mode badge, summary and help text
func (app *App) drawUI() {
	const padding = float32(8)
	fontSize14 := float32(14)
	fontSize16 := float32(16)
	fontSize12 := float32(12)
	lineHeight := float32(20)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	// Title, top center
	title := app.Model.mesh.Name
	titleWidth := rl.MeasureTextEx(app.UI.font, title, fontSize16, 1).X
	rl.DrawTextEx(app.UI.font, title, rl.Vector2{X: (screenWidth - titleWidth) / 2, Y: 10}, fontSize16, 1, rl.White)

	// Pick overlay, upper left
	overlay := Label{
		Text:      app.Overlay.Text(),
		Position:  rl.Vector2{X: 10, Y: 10},
		TextColor: rl.Yellow,
		Shadow:    true,
	}
	overlay.Draw(app.UI.font, fontSize14, padding)

	// Mode badge, top right
	modeText := "NAVIGATE"
	modeColor := rl.LightGray
	if app.Control.Mode() == control.Select {
		modeText = "SELECT"
		modeColor = rl.Green
	}
	modeWidth := rl.MeasureTextEx(app.UI.font, modeText, fontSize14, 1).X
	badge := Label{
		Text:        modeText,
		Position:    rl.Vector2{X: screenWidth - modeWidth - 2*padding - 10, Y: 10},
		TextColor:   modeColor,
		BorderColor: modeColor,
	}
	badge.Draw(app.UI.font, fontSize14, padding)

	// Summary and help, bottom left
	lines := app.Summary.Lines()
	if app.View.showHelp {
		lines = append(lines,
			"",
			"P: Toggle select mode | Left Click: Pick vertex (select mode)",
			"Left Drag: Rotate | Shift+Drag / Middle: Pan | Wheel: Zoom",
			"Home: Reset | T: Top | B: Bottom | 1-4: Front/Back/Left/Right",
			"W: Wireframe | F: Fill | V: Markers | H: Help | Esc: Quit",
		)
	}
	y := screenHeight - 30 - lineHeight*float32(len(lines))
	for _, line := range lines {
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
		y += lineHeight
	}

	// Version and FPS in bottom-left corner
	bottomY := screenHeight - 20
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.UI.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.UI.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.UI.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)
}
