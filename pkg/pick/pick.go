// Package pick resolves a screen-space click to the nearest mesh vertex.
//
// The search works on projected coordinates only, so any renderer that can
// map a world position to a screen position can drive it through Projector.
package pick

import (
	"math"

	"github.com/philipparndt/meshpick/pkg/geometry"
)

// DefaultRadius is the picking tolerance in pixels
const DefaultRadius = 10.0

// Point is a position in screen pixels, origin top-left
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two screen points
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Projector maps a world position to the screen under the current camera.
// ok is false for points that cannot be seen, e.g. behind the camera.
type Projector interface {
	Project(p geometry.Vector3) (screen Point, ok bool)
}

// ProjectorFunc adapts a function to Projector
type ProjectorFunc func(p geometry.Vector3) (Point, bool)

func (f ProjectorFunc) Project(p geometry.Vector3) (Point, bool) {
	return f(p)
}

// Result is a successful pick
type Result struct {
	VertexID int
	Position geometry.Vector3 // the loaded coordinates, not a reprojection
	Screen   Point            // where the vertex marker was drawn
	Click    Point
	Distance float64 // pixels between click and marker
}

// Picker finds the vertex marker nearest to a click
type Picker struct {
	Radius float64
}

// NewPicker creates a picker with the given tolerance.
// Non-positive values fall back to DefaultRadius.
func NewPicker(radius float64) Picker {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return Picker{Radius: radius}
}

// Pick projects every vertex and returns the one nearest to click within the radius
func (p Picker) Pick(vertices []geometry.Vector3, proj Projector, click Point) (Result, bool) {
	screen := make([]Point, len(vertices))
	visible := make([]bool, len(vertices))
	for i, v := range vertices {
		screen[i], visible[i] = proj.Project(v)
	}

	idx, dist, ok := Nearest(screen, visible, click, p.Radius)
	if !ok {
		return Result{}, false
	}

	return Result{
		VertexID: idx,
		Position: vertices[idx],
		Screen:   screen[idx],
		Click:    click,
		Distance: dist,
	}, true
}

// Nearest returns the index of the visible point closest to click, if it lies
// within radius. Ties go to the lowest index. A nil visible slice means all
// points are visible.
func Nearest(points []Point, visible []bool, click Point, radius float64) (int, float64, bool) {
	best := -1
	bestDist := math.Inf(1)

	for i, pt := range points {
		if visible != nil && !visible[i] {
			continue
		}
		d := pt.Distance(click)
		if d <= radius && d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best < 0 {
		return -1, 0, false
	}
	return best, bestDist, true
}
