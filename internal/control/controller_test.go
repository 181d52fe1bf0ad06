package control

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/meshpick/internal/hud"
	"github.com/philipparndt/meshpick/pkg/geometry"
	"github.com/philipparndt/meshpick/pkg/mesh"
	"github.com/philipparndt/meshpick/pkg/pick"
	"github.com/philipparndt/meshpick/pkg/viewer"
)

type spyPicker struct {
	calls  int
	result pick.Result
	ok     bool
}

func (s *spyPicker) Pick(_ []geometry.Vector3, _ pick.Projector, _ pick.Point) (pick.Result, bool) {
	s.calls++
	return s.result, s.ok
}

var identity = pick.ProjectorFunc(func(p geometry.Vector3) (pick.Point, bool) {
	return pick.Point{X: p.X, Y: p.Y}, true
})

func TestInitialModeIsNavigate(t *testing.T) {
	c := New(nil, &spyPicker{}, hud.NewOverlay(0))
	assert.Equal(t, Navigate, c.Mode())
}

func TestToggle(t *testing.T) {
	c := New(nil, &spyPicker{}, hud.NewOverlay(0))

	assert.Equal(t, Select, c.Toggle())
	assert.Equal(t, Select, c.Mode())
	assert.Equal(t, Navigate, c.Toggle())
	assert.Equal(t, Navigate, c.Mode())
}

func TestEscape(t *testing.T) {
	c := New(nil, &spyPicker{}, hud.NewOverlay(0))
	c.Toggle()

	assert.False(t, c.Escape(), "first escape only leaves select mode")
	assert.Equal(t, Navigate, c.Mode())
	assert.True(t, c.Escape())
	assert.Equal(t, Navigate, c.Mode())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "navigate", Navigate.String())
	assert.Equal(t, "select", Select.String())
	assert.Equal(t, "unknown", Mode(42).String())
}

func TestClickInNavigateModeSkipsPicker(t *testing.T) {
	spy := &spyPicker{result: pick.Result{VertexID: 0}, ok: true}
	overlay := hud.NewOverlay(1)
	c := New([]geometry.Vector3{{}}, spy, overlay)

	_, ok := c.HandleClick(pick.Point{}, identity)

	assert.False(t, ok)
	assert.Zero(t, spy.calls)
	assert.Empty(t, overlay.Text())
}

func TestClickInSelectModeUpdatesOverlay(t *testing.T) {
	spy := &spyPicker{result: pick.Result{VertexID: 2, Position: geometry.NewVector3(0, 1, 0)}, ok: true}
	overlay := hud.NewOverlay(3)
	c := New(make([]geometry.Vector3, 3), spy, overlay)
	c.Toggle()

	res, ok := c.HandleClick(pick.Point{X: 1, Y: 1}, identity)

	require.True(t, ok)
	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, 2, res.VertexID)
	assert.Contains(t, overlay.Text(), "Vertex ID: 2 / 2")
}

func TestMissKeepsOverlay(t *testing.T) {
	vertices := []geometry.Vector3{geometry.NewVector3(0, 0, 0), geometry.NewVector3(100, 0, 0)}
	overlay := hud.NewOverlay(len(vertices))
	c := New(vertices, pick.NewPicker(5), overlay)
	c.Toggle()

	_, ok := c.HandleClick(pick.Point{X: 100, Y: 1}, identity)
	require.True(t, ok)
	before := overlay.Text()

	_, ok = c.HandleClick(pick.Point{X: 50, Y: 50}, identity)

	assert.False(t, ok)
	assert.Equal(t, before, overlay.Text())
}

func TestNavigateClickOnVertexLeavesOverlay(t *testing.T) {
	vertices := []geometry.Vector3{geometry.NewVector3(0, 0, 0), geometry.NewVector3(100, 0, 0)}
	overlay := hud.NewOverlay(len(vertices))
	c := New(vertices, pick.NewPicker(5), overlay)
	c.Toggle()
	c.HandleClick(pick.Point{X: 0, Y: 0}, identity)
	before := overlay.Text()
	c.Toggle()

	_, ok := c.HandleClick(pick.Point{X: 100, Y: 0}, identity)

	assert.False(t, ok)
	assert.Equal(t, before, overlay.Text())
}

func TestPickTriangleEndToEnd(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := mesh.Parse("triangle.obj", strings.NewReader(src))
	require.NoError(t, err)

	viewport := viewer.NewViewport(viewer.NewCamera(m.BoundingBox()), 1024, 768)
	overlay := hud.NewOverlay(m.VertexCount())
	c := New(m.Vertices, pick.NewPicker(pick.DefaultRadius), overlay)
	c.Toggle()

	click, visible := viewport.Project(m.Vertices[1])
	require.True(t, visible)

	res, ok := c.HandleClick(click, viewport)

	require.True(t, ok)
	assert.Equal(t, 1, res.VertexID)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), res.Position)
	assert.Contains(t, overlay.Text(), "Vertex ID: 1 / 2")
	assert.Contains(t, overlay.Text(), "Vertex Pos: (1.0000, 0.0000, 0.0000)")
}
