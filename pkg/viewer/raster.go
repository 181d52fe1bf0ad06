package viewer

import (
	"image"
	"image/color"
	"math"
)

// screenVertex is a projected vertex in pixel space
type screenVertex struct {
	x, y, z float64
}

// fillTriangleWithDepth fills a triangle using barycentric coverage and a
// z-buffer. Smaller depth values are closer to the camera.
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, a, b, c screenVertex, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Dx()

	minX := int(math.Max(float64(bounds.Min.X), math.Floor(math.Min(a.x, math.Min(b.x, c.x)))))
	maxX := int(math.Min(float64(bounds.Max.X-1), math.Ceil(math.Max(a.x, math.Max(b.x, c.x)))))
	minY := int(math.Max(float64(bounds.Min.Y), math.Floor(math.Min(a.y, math.Min(b.y, c.y)))))
	maxY := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(math.Max(a.y, math.Max(b.y, c.y)))))

	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.z + w1*b.z + w2*c.z
			idx := (y-bounds.Min.Y)*width + (x - bounds.Min.X)
			if z >= zbuffer[idx] {
				continue
			}
			zbuffer[idx] = z
			img.SetRGBA(x, y, col)
		}
	}
}

func edge(a, b screenVertex, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// drawLine clips a line to the image and draws it using Bresenham's algorithm
func drawLine(img *image.RGBA, fx1, fy1, fx2, fy2 float64, col color.RGBA) {
	bounds := img.Bounds()
	fx1, fy1, fx2, fy2, ok := clipLine(fx1, fy1, fx2, fy2, bounds)
	if !ok {
		return
	}
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))
	x2, y2 := int(math.Round(fx2)), int(math.Round(fy2))

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	for {
		if (image.Point{X: x1, Y: y1}).In(bounds) {
			img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// clipLine clips a segment to the pixel rectangle of bounds (Liang-Barsky).
// ok is false when no part of the segment is inside.
func clipLine(x1, y1, x2, y2 float64, bounds image.Rectangle) (cx1, cy1, cx2, cy2 float64, ok bool) {
	minX, minY := float64(bounds.Min.X), float64(bounds.Min.Y)
	maxX, maxY := float64(bounds.Max.X-1), float64(bounds.Max.Y-1)
	dx, dy := x2-x1, y2-y1

	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-dx, x1 - minX},
		{dx, maxX - x1},
		{-dy, y1 - minY},
		{dy, maxY - y1},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

// fillCircle draws a filled disc, used for vertex markers
func fillCircle(img *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	bounds := img.Bounds()
	r2 := radius * radius
	for y := int(math.Floor(cy - radius)); y <= int(math.Ceil(cy+radius)); y++ {
		for x := int(math.Floor(cx - radius)); x <= int(math.Ceil(cx+radius)); x++ {
			if !(image.Point{X: x, Y: y}).In(bounds) {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
