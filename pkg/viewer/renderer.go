package viewer

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/meshpick/pkg/geometry"
	"github.com/philipparndt/meshpick/pkg/mesh"
	"github.com/philipparndt/meshpick/pkg/pick"
)

var (
	backgroundColor = color.RGBA{15, 18, 25, 255}
	surfaceColor    = color.RGBA{211, 211, 211, 255}
	wireframeColor  = color.RGBA{100, 100, 100, 255}
	markerColor     = color.RGBA{255, 192, 203, 255}
	highlightColor  = color.RGBA{255, 0, 0, 255}
)

const (
	defaultMarkerRadius    = 2.5
	defaultHighlightRadius = 5.0
)

// ModelRenderer is a fyne widget that software-renders a mesh with vertex markers
type ModelRenderer struct {
	widget.BaseWidget
	mesh      *mesh.Mesh
	triangles [][3]int
	edges     [][2]int
	camera    *Camera
	raster    *canvas.Raster

	showFilled      bool
	showWireframe   bool
	showMarkers     bool
	markerRadius    float64
	highlightRadius float64
	highlight       int // vertex id drawn in highlightColor, -1 for none
	isDragging      bool
	onTap           func(click pick.Point, proj pick.Projector)
}

// NewModelRenderer creates a renderer for the mesh
func NewModelRenderer(m *mesh.Mesh) *ModelRenderer {
	r := &ModelRenderer{
		mesh:            m,
		triangles:       m.Triangles(),
		edges:           m.Edges(),
		camera:          NewCamera(m.BoundingBox()),
		showFilled:      true,
		showWireframe:   true,
		showMarkers:     true,
		markerRadius:    defaultMarkerRadius,
		highlightRadius: defaultHighlightRadius,
		highlight:       -1,
	}
	r.raster = canvas.NewRaster(r.draw)
	r.ExtendBaseWidget(r)
	return r
}

// SetOnTap sets the callback for taps that are not the end of a drag
func (r *ModelRenderer) SetOnTap(callback func(click pick.Point, proj pick.Projector)) {
	r.onTap = callback
}

// SetHighlight marks a vertex as selected. Use -1 to clear.
func (r *ModelRenderer) SetHighlight(id int) {
	r.highlight = id
	r.raster.Refresh()
}

// SetFilledMode toggles the shaded surface
func (r *ModelRenderer) SetFilledMode(filled bool) {
	r.showFilled = filled
	r.raster.Refresh()
}

// SetWireframe toggles the edge overlay
func (r *ModelRenderer) SetWireframe(wireframe bool) {
	r.showWireframe = wireframe
	r.raster.Refresh()
}

// SetMarkers toggles the vertex markers. The highlighted vertex is always drawn.
func (r *ModelRenderer) SetMarkers(show bool) {
	r.showMarkers = show
	r.raster.Refresh()
}

// SetMarkerRadii sets the marker and highlight radii in device independent pixels.
// Values that are not positive keep the current radius.
func (r *ModelRenderer) SetMarkerRadii(marker, highlight float64) {
	if marker > 0 {
		r.markerRadius = marker
	}
	if highlight > 0 {
		r.highlightRadius = highlight
	}
	r.raster.Refresh()
}

// ResetView restores the initial camera
func (r *ModelRenderer) ResetView() {
	r.camera.Reset()
	r.raster.Refresh()
}

// Viewport returns a projector for the current widget size in fyne coordinates
func (r *ModelRenderer) Viewport() Viewport {
	size := r.Size()
	return NewViewport(r.camera, float64(size.Width), float64(size.Height))
}

// CreateRenderer creates the renderer for the widget
func (r *ModelRenderer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.raster)
}

// MinSize keeps the view usable in small windows
func (r *ModelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

// Dragged rotates the camera
func (r *ModelRenderer) Dragged(event *fyne.DragEvent) {
	r.isDragging = true
	r.camera.Rotate(float64(event.Dragged.DY)*0.01, float64(-event.Dragged.DX)*0.01)
	r.raster.Refresh()
}

// DragEnd handles the end of a drag event
func (r *ModelRenderer) DragEnd() {
	r.isDragging = false
}

// Tapped forwards a click to the tap callback
func (r *ModelRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging || r.onTap == nil {
		return
	}
	r.onTap(pick.Point{X: float64(event.Position.X), Y: float64(event.Position.Y)}, r.Viewport())
}

// Scrolled zooms the camera
func (r *ModelRenderer) Scrolled(event *fyne.ScrollEvent) {
	r.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	r.raster.Refresh()
}

// draw renders the scene at the raster's pixel size
func (r *ModelRenderer) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img
	}
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = backgroundColor.R
		img.Pix[i+1] = backgroundColor.G
		img.Pix[i+2] = backgroundColor.B
		img.Pix[i+3] = backgroundColor.A
	}

	projected := make([]screenVertex, len(r.mesh.Vertices))
	visible := make([]bool, len(r.mesh.Vertices))
	for i, v := range r.mesh.Vertices {
		x, y, z, ok := r.camera.Project(v, float64(w), float64(h))
		projected[i] = screenVertex{x: x, y: y, z: z}
		visible[i] = ok
	}

	if r.showFilled {
		zbuffer := make([]float64, w*h)
		for i := range zbuffer {
			zbuffer[i] = math.Inf(1)
		}
		lightDir := geometry.NewVector3(-0.5, -1.0, -0.5).Normalize()

		for _, tri := range r.triangles {
			if !visible[tri[0]] || !visible[tri[1]] || !visible[tri[2]] {
				continue
			}
			a, b, c := r.mesh.Vertices[tri[0]], r.mesh.Vertices[tri[1]], r.mesh.Vertices[tri[2]]
			normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
			intensity := math.Max(0.3, math.Abs(normal.Dot(lightDir)))
			fillTriangleWithDepth(img, zbuffer, projected[tri[0]], projected[tri[1]], projected[tri[2]], shade(surfaceColor, intensity))
		}
	}

	if r.showWireframe {
		for _, e := range r.edges {
			if !visible[e[0]] || !visible[e[1]] {
				continue
			}
			p, q := projected[e[0]], projected[e[1]]
			drawLine(img, p.x, p.y, q.x, q.y, wireframeColor)
		}
	}

	// Markers use a size relative to a 1x display so they look the same on HiDPI screens
	scale := 1.0
	if width := float64(r.Size().Width); width > 0 {
		scale = float64(w) / width
	}
	if r.showMarkers {
		for i, p := range projected {
			if visible[i] {
				fillCircle(img, p.x, p.y, r.markerRadius*scale, markerColor)
			}
		}
	}
	if r.highlight >= 0 && r.highlight < len(projected) && visible[r.highlight] {
		p := projected[r.highlight]
		fillCircle(img, p.x, p.y, r.highlightRadius*scale, highlightColor)
	}

	return img
}

func shade(c color.RGBA, intensity float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * intensity),
		G: uint8(float64(c.G) * intensity),
		B: uint8(float64(c.B) * intensity),
		A: c.A,
	}
}
