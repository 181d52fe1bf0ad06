package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/meshpick/pkg/geometry"
	"github.com/philipparndt/meshpick/pkg/pick"
)

// screenProjector projects through raylib's camera so picking uses the exact
// positions the vertex markers are drawn at
type screenProjector struct {
	camera rl.Camera3D
}

// Project implements pick.Projector
func (p screenProjector) Project(v geometry.Vector3) (pick.Point, bool) {
	pos := toRaylib(v)
	forward := rl.Vector3Subtract(p.camera.Target, p.camera.Position)
	if rl.Vector3DotProduct(rl.Vector3Subtract(pos, p.camera.Position), forward) <= 0 {
		return pick.Point{}, false
	}
	s := rl.GetWorldToScreen(pos, p.camera)
	return pick.Point{X: float64(s.X), Y: float64(s.Y)}, true
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

func toVector2(p pick.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
