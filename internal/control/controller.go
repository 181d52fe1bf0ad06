// Package control holds the navigate/select state machine and routes clicks to the picker.
package control

import (
	"fmt"
	"log/slog"

	"github.com/philipparndt/meshpick/internal/hud"
	"github.com/philipparndt/meshpick/pkg/geometry"
	"github.com/philipparndt/meshpick/pkg/pick"
)

// Picker resolves a click against the vertices of the loaded mesh
type Picker interface {
	Pick(vertices []geometry.Vector3, proj pick.Projector, click pick.Point) (pick.Result, bool)
}

// Controller owns the current mode. It must only be used from the event loop.
type Controller struct {
	mode     Mode
	vertices []geometry.Vector3
	picker   Picker
	overlay  *hud.Overlay
}

// New creates a controller in Navigate mode
func New(vertices []geometry.Vector3, picker Picker, overlay *hud.Overlay) *Controller {
	return &Controller{
		mode:     Navigate,
		vertices: vertices,
		picker:   picker,
		overlay:  overlay,
	}
}

// Mode returns the current mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Toggle switches between Navigate and Select and returns the new mode
func (c *Controller) Toggle() Mode {
	if c.mode == Navigate {
		c.mode = Select
	} else {
		c.mode = Navigate
	}
	slog.Debug("Mode changed", "mode", c.mode)
	return c.mode
}

// Escape leaves Select mode. In Navigate mode it reports that the viewer should quit.
func (c *Controller) Escape() (quit bool) {
	if c.mode == Select {
		c.Toggle()
		return false
	}
	return true
}

// HandleClick picks the vertex under click in Select mode and updates the overlay.
// In Navigate mode the picker is not consulted and ok is false.
func (c *Controller) HandleClick(click pick.Point, proj pick.Projector) (pick.Result, bool) {
	if c.mode != Select {
		return pick.Result{}, false
	}

	res, ok := c.picker.Pick(c.vertices, proj, click)
	if !ok {
		slog.Debug("No vertex near click", "x", click.X, "y", click.Y)
		return pick.Result{}, false
	}

	c.overlay.Update(res, true)
	slog.Info("Picked vertex", "id", res.VertexID, "position", res.Position.String(), "click", fmt.Sprintf("(%.0f, %.0f)", res.Click.X, res.Click.Y), "distance", res.Distance)
	return res, true
}
