package viewer

import (
	"math"

	"github.com/philipparndt/meshpick/pkg/geometry"
)

// nearPlane is the minimum view depth a point needs to be projected
const nearPlane = 0.01

// Camera is an orbit camera looking at Target from Distance
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Distance  float64
	RotationX float64 // Elevation
	RotationY float64 // Azimuth

	home         geometry.Vector3
	homeDistance float64
}

// NewCamera creates a camera framing the bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := bbox.Center()
	distance := bbox.Size().MaxComponent() * 2.0
	if distance <= 0 {
		distance = 1
	}

	c := &Camera{
		Target:       center,
		Up:           geometry.NewVector3(0, 1, 0),
		FOV:          math.Pi / 4, // 45 degrees
		Distance:     distance,
		home:         center,
		homeDistance: distance,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition places the camera on its orbit sphere
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp elevation to avoid flipping over the poles
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX))

	c.UpdatePosition()
}

// Zoom scales the camera distance by (1 + delta)
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Pan moves the target in the view plane by a screen delta in pixels
func (c *Camera) Pan(dx, dy float64) {
	_, right, up := c.basis()
	speed := c.Distance * 0.001
	c.Target = c.Target.Add(right.Mul(-dx * speed)).Add(up.Mul(dy * speed))
	c.UpdatePosition()
}

// Reset restores the initial framing
func (c *Camera) Reset() {
	c.Target = c.home
	c.Distance = c.homeDistance
	c.RotationX = 0
	c.RotationY = 0
	c.UpdatePosition()
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project projects a 3D point to screen coordinates. The returned depth is
// the distance along the view direction; ok is false for points closer than
// the near plane, whose screen position is meaningless.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (x, y, depth float64, ok bool) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	cx := relative.Dot(right)
	cy := relative.Dot(up)
	depth = relative.Dot(forward)
	if depth < nearPlane {
		return 0, 0, depth, false
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	x = (cx/(depth*fovScale*aspect))*(width/2) + width/2
	y = (-cy/(depth*fovScale))*(height/2) + height/2
	return x, y, depth, true
}
