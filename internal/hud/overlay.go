package hud

import (
	"fmt"

	"github.com/philipparndt/meshpick/pkg/pick"
)

// Overlay holds the text for the most recent successful pick
type Overlay struct {
	lastID   int // highest vertex id, shown as "id / lastID"
	text     string
	selected pick.Result
	has      bool
}

// NewOverlay creates an empty overlay for a mesh with vertexCount vertices
func NewOverlay(vertexCount int) *Overlay {
	return &Overlay{lastID: vertexCount - 1}
}

// Update replaces the text on a hit. A miss keeps the previous text.
// It reports whether the overlay changed.
func (o *Overlay) Update(res pick.Result, ok bool) bool {
	if !ok {
		return false
	}
	o.selected = res
	o.has = true
	o.text = Format(res, o.lastID)
	return true
}

// Text returns the current overlay text, empty before the first pick
func (o *Overlay) Text() string {
	return o.text
}

// Selected returns the pick shown in the overlay
func (o *Overlay) Selected() (pick.Result, bool) {
	return o.selected, o.has
}

// Format renders a pick the way the overlay shows it
func Format(res pick.Result, lastID int) string {
	p := res.Position
	return fmt.Sprintf(
		"Vertex ID: %d / %d\nVertex Pos: (%.4f, %.4f, %.4f)\nScreen: (%.0f, %.0f) px",
		res.VertexID, lastID,
		p.X, p.Y, p.Z,
		res.Screen.X, res.Screen.Y,
	)
}
