package main

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/meshpick/cmd"
	"github.com/philipparndt/meshpick/internal/config"
	"github.com/philipparndt/meshpick/internal/control"
	"github.com/philipparndt/meshpick/internal/hud"
	"github.com/philipparndt/meshpick/pkg/analysis"
	"github.com/philipparndt/meshpick/pkg/mesh"
	"github.com/philipparndt/meshpick/pkg/pick"
	"github.com/philipparndt/meshpick/pkg/viewer"
)

type App struct {
	window   fyne.Window
	mesh     *mesh.Mesh
	renderer *viewer.ModelRenderer
	control  *control.Controller
	overlay  *hud.Overlay

	overlayLabel *widget.Label
	modeCheck    *widget.Check
}

func main() {
	cmd.Execute(cmd.NewRootCommand("meshpick-gui", run))
}

func run(m *mesh.Mesh, settings config.Settings) error {
	a := fyneapp.New()
	w := a.NewWindow("meshpick - " + m.Name)

	overlay := hud.NewOverlay(m.VertexCount())
	renderer := viewer.NewModelRenderer(m)
	renderer.SetMarkerRadii(float64(settings.MarkerRadius), float64(settings.HighlightRadius))

	appInstance := &App{
		window:   w,
		mesh:     m,
		renderer: renderer,
		control:  control.New(m.Vertices, pick.NewPicker(settings.PickRadius), overlay),
		overlay:  overlay,
	}
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(float32(settings.WindowWidth), float32(settings.WindowHeight)))
	w.ShowAndRun()
	return nil
}

func (a *App) setupMainUI() {
	a.overlayLabel = widget.NewLabel("")
	a.overlayLabel.TextStyle = fyne.TextStyle{Monospace: true}
	a.overlayLabel.Hide()

	a.renderer.SetOnTap(a.handleTap)

	a.modeCheck = widget.NewCheck("Select mode (P)", func(checked bool) {
		if checked != (a.control.Mode() == control.Select) {
			a.toggleMode()
		}
	})

	filledCheck := widget.NewCheck("Show Filled (F)", func(checked bool) {
		a.renderer.SetFilledMode(checked)
	})
	filledCheck.SetChecked(true)

	wireframeCheck := widget.NewCheck("Show Wireframe (W)", func(checked bool) {
		a.renderer.SetWireframe(checked)
	})
	wireframeCheck.SetChecked(true)

	markersCheck := widget.NewCheck("Show Markers (V)", func(checked bool) {
		a.renderer.SetMarkers(checked)
	})
	markersCheck.SetChecked(true)

	resetButton := widget.NewButton("Reset View (Home)", func() {
		a.renderer.ResetView()
	})

	modelInfo := widget.NewLabel(strings.Join(analysis.AnalyzeMesh(a.mesh).Lines(), "\n"))

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Press P to switch to select mode\n" +
			"• Click on a vertex marker to show its id\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Esc returns to navigation, then quits\n" +
			"• H hides these instructions",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		modelInfo,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		a.modeCheck,
		filledCheck,
		wireframeCheck,
		markersCheck,
		resetButton,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(280, 0))

	// The overlay sits on top of the view in the upper-left corner
	view := container.NewStack(
		a.renderer,
		container.NewVBox(container.NewHBox(a.overlayLabel, layout.NewSpacer()), layout.NewSpacer()),
	)

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		view,       // center
	)

	a.window.SetContent(content)
	a.window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyP:
			a.toggleMode()
		case fyne.KeyEscape:
			if a.control.Escape() {
				a.window.Close()
				return
			}
			a.modeCheck.SetChecked(false)
			fmt.Printf("Mode: %s\n", a.control.Mode())
		case fyne.KeyHome:
			a.renderer.ResetView()
		case fyne.KeyF:
			filledCheck.SetChecked(!filledCheck.Checked)
		case fyne.KeyW:
			wireframeCheck.SetChecked(!wireframeCheck.Checked)
		case fyne.KeyV:
			markersCheck.SetChecked(!markersCheck.Checked)
		case fyne.KeyH:
			if instructions.Visible() {
				instructions.Hide()
			} else {
				instructions.Show()
			}
		}
	})
}

func (a *App) toggleMode() {
	mode := a.control.Toggle()
	a.modeCheck.SetChecked(mode == control.Select)
	fmt.Printf("Mode: %s\n", mode)
}

func (a *App) handleTap(click pick.Point, proj pick.Projector) {
	if a.control.Mode() != control.Select {
		return
	}

	res, ok := a.control.HandleClick(click, proj)
	if !ok {
		fmt.Println("No vertex found close to the picked point.")
		return
	}

	slog.Debug("Overlay updated", "vertex", res.VertexID)
	a.overlayLabel.SetText(a.overlay.Text())
	a.overlayLabel.Show()
	a.renderer.SetHighlight(res.VertexID)
}
