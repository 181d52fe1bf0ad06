package viewer

import (
	"github.com/philipparndt/meshpick/pkg/geometry"
	"github.com/philipparndt/meshpick/pkg/pick"
)

// Viewport binds a camera to a screen size so it can serve as a pick.Projector
type Viewport struct {
	Camera        *Camera
	Width, Height float64
}

// NewViewport creates a viewport of the given pixel size
func NewViewport(camera *Camera, width, height float64) Viewport {
	return Viewport{Camera: camera, Width: width, Height: height}
}

// Project implements pick.Projector
func (v Viewport) Project(p geometry.Vector3) (pick.Point, bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return pick.Point{}, false
	}
	x, y, _, ok := v.Camera.Project(p, v.Width, v.Height)
	return pick.Point{X: x, Y: y}, ok
}
