package fractals

// Button identifies which pointer button produced a click.
type Button int

const (
	// Primary zooms in.
	Primary Button = iota
	// Secondary zooms out.
	Secondary
)

const (
	// DefaultScale is the zoom factor a fresh Viewport starts with.
	DefaultScale = 0.9

	ZoomIn  = 1.2
	ZoomOut = 0.7

	minScale = 1e-300
	maxScale = 1e300
)

// zoom returns the scale factor for the button, 0 for unknown buttons.
func (b Button) zoom() float64 {
	switch b {
	case Primary:
		return ZoomIn
	case Secondary:
		return ZoomOut
	}
	return 0
}

// Viewport is the pan/zoom state shared by the Mandelbrot field and the
// recursive curve generators. It is a plain value: click handling returns
// an updated copy.
type Viewport struct {
	CenterX, CenterY float64 // pan offset in normalized plane units
	Scale            float64 // larger is more zoomed in
	Width, Height    int     // canvas size in pixels
}

// NewViewport returns the startup viewport for a width x height canvas.
func NewViewport(width, height int) Viewport {
	return Viewport{Scale: DefaultScale, Width: width, Height: height}
}

// ToPlane maps pixel (px, py) to the complex plane.
func (v Viewport) ToPlane(px, py int) complex128 {
	w, h := float64(v.Width), float64(v.Height)
	re := (float64(px)-w/2.0)/(0.5*v.Scale*w) + v.CenterX
	im := (float64(py)-h/2.0)/(0.5*v.Scale*h) + v.CenterY
	return complex(re, im)
}

// ApplyClick recenters on the clicked pixel and rescales. The pan delta is
// the click position in [-1, 1] canvas units relative to the current
// center, multiplied by the current scale. Unknown buttons leave the
// viewport unchanged.
func (v Viewport) ApplyClick(px, py int, b Button) Viewport {
	factor := b.zoom()
	if factor == 0 {
		return v
	}
	w, h := float64(v.Width), float64(v.Height)
	dx := ((2.0*float64(px)/w - 1.0) - v.CenterX) * v.Scale
	dy := ((2.0*float64(py)/h - 1.0) - v.CenterY) * v.Scale
	v.CenterX += dx
	v.CenterY += dy
	v.Scale = Clamp(v.Scale*factor, minScale, maxScale)
	return v
}

// Pan returns the viewport's center reused as a pixel-space offset, which
// is how the recursive curve generators consume it.
func (v Viewport) Pan() Pan {
	return Pan{X: v.CenterX, Y: v.CenterY}
}

// Pan is a pixel-space offset. The curve generators apply it with
// different signs: Koch and Sierpinski subtract it, the tree adds it.
type Pan struct {
	X, Y float64
}

// subtract shifts (x, y) by -p, truncating toward zero.
func (p Pan) subtract(x, y int) (int, int) {
	return int(float64(x) - p.X), int(float64(y) - p.Y)
}

// add shifts (x, y) by +p, truncating toward zero.
func (p Pan) add(x, y int) (int, int) {
	return int(float64(x) + p.X), int(float64(y) + p.Y)
}

// PlaneRect is a fixed region of the complex plane. The Julia field samples
// it directly, independent of any Viewport.
type PlaneRect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// JuliaRect is the default region for the Julia field.
var JuliaRect = PlaneRect{MinX: -2.0, MaxX: 2.0, MinY: -1.5, MaxY: 1.5}

// ToPlane maps pixel (px, py) of a width x height canvas onto the rect.
func (r PlaneRect) ToPlane(px, py, width, height int) complex128 {
	re := r.MinX + (r.MaxX-r.MinX)*float64(px)/float64(width)
	im := r.MinY + (r.MaxY-r.MinY)*float64(py)/float64(height)
	return complex(re, im)
}
