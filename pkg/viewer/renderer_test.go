package viewer

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/meshpick/pkg/mesh"
)

func TestDrawMarksVertices(t *testing.T) {
	m, err := mesh.Parse("tri.obj", strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	require.NoError(t, err)

	r := NewModelRenderer(m)
	r.showFilled = false
	r.showWireframe = false
	r.highlight = 1

	img := r.draw(200, 200)

	x, y, _, ok := r.camera.Project(m.Vertices[0], 200, 200)
	require.True(t, ok)
	assert.Equal(t, markerColor, img.At(int(x), int(y)))

	x, y, _, ok = r.camera.Project(m.Vertices[1], 200, 200)
	require.True(t, ok)
	assert.Equal(t, highlightColor, img.At(int(x), int(y)))

	assert.Equal(t, backgroundColor, img.At(199, 0))
}

func TestDrawHonoursMarkerSettings(t *testing.T) {
	m, err := mesh.Parse("tri.obj", strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	require.NoError(t, err)

	r := NewModelRenderer(m)
	r.showFilled = false
	r.showWireframe = false
	r.SetMarkerRadii(8, 0)
	assert.Equal(t, 8.0, r.markerRadius)
	assert.Equal(t, defaultHighlightRadius, r.highlightRadius)

	x, y, _, ok := r.camera.Project(m.Vertices[0], 200, 200)
	require.True(t, ok)

	// 6 px away is outside the default marker but inside an 8 px one
	img := r.draw(200, 200)
	assert.Equal(t, markerColor, img.At(int(x)+6, int(y)))

	r.SetMarkers(false)
	img = r.draw(200, 200)
	assert.Equal(t, backgroundColor, img.At(int(x), int(y)))
}

func TestShade(t *testing.T) {
	assert.Equal(t, color.RGBA{100, 50, 0, 255}, shade(color.RGBA{200, 100, 0, 255}, 0.5))
}
