package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/philipparndt/meshpick/pkg/geometry"
	"github.com/philipparndt/meshpick/pkg/pick"
)

func TestOverlayStartsEmpty(t *testing.T) {
	o := NewOverlay(3)
	assert.Empty(t, o.Text())
	_, ok := o.Selected()
	assert.False(t, ok)
}

func TestOverlayUpdateOnHit(t *testing.T) {
	o := NewOverlay(3)
	res := pick.Result{
		VertexID: 1,
		Position: geometry.NewVector3(1, 0, 0),
		Screen:   pick.Point{X: 640.4, Y: 360},
	}

	changed := o.Update(res, true)

	assert.True(t, changed)
	assert.Equal(t, "Vertex ID: 1 / 2\nVertex Pos: (1.0000, 0.0000, 0.0000)\nScreen: (640, 360) px", o.Text())
	selected, ok := o.Selected()
	assert.True(t, ok)
	assert.Equal(t, res, selected)
}

func TestOverlayMissKeepsPreviousText(t *testing.T) {
	o := NewOverlay(10)
	o.Update(pick.Result{VertexID: 7, Position: geometry.NewVector3(-1.5, 2.25, 3)}, true)
	before := o.Text()

	changed := o.Update(pick.Result{}, false)

	assert.False(t, changed)
	assert.Equal(t, before, o.Text())
	selected, _ := o.Selected()
	assert.Equal(t, 7, selected.VertexID)
}

func TestOverlayNewPickReplacesText(t *testing.T) {
	o := NewOverlay(10)
	o.Update(pick.Result{VertexID: 7}, true)
	o.Update(pick.Result{VertexID: 3, Position: geometry.NewVector3(0.12345, 0, 0)}, true)

	assert.Contains(t, o.Text(), "Vertex ID: 3 / 9")
	assert.Contains(t, o.Text(), "(0.1235, 0.0000, 0.0000)")
	assert.NotContains(t, o.Text(), "Vertex ID: 7")
}
