package main

import (
	"image"

	"github.com/scottkirkwood/fractals"
)

// vpCenter inspects the canvas and window geometry, and determines where
// the origin of the canvas should be painted into the window.
// If the canvas is bigger than the window, this is always (0, 0).
// If a dimension of the canvas is smaller than the window, then:
// x = (window_width - canvas_width) / 2 and
// y = (window_height - canvas_height) / 2
func vpCenter(canvas, window image.Point) image.Point {
	xmargin, ymargin := 0, 0
	if canvas.X < window.X {
		xmargin = (window.X - canvas.X) / 2
	}
	if canvas.Y < window.Y {
		ymargin = (window.Y - canvas.Y) / 2
	}
	return image.Point{xmargin, ymargin}
}

// fitFrame returns where the canvas is shown in the window. A canvas that
// fits is shown 1:1 and centered; otherwise it is shrunk, keeping its
// aspect ratio, to fill the window along one dimension.
func fitFrame(canvas, window image.Point) image.Rectangle {
	if canvas.X <= 0 || canvas.Y <= 0 || window.X <= 0 || window.Y <= 0 {
		return image.Rectangle{}
	}
	size := canvas
	if canvas.X > window.X || canvas.Y > window.Y {
		// Pick the tighter dimension.
		if canvas.X*window.Y > canvas.Y*window.X {
			size = image.Pt(window.X, canvas.Y*window.X/canvas.X)
		} else {
			size = image.Pt(canvas.X*window.Y/canvas.Y, window.Y)
		}
		size.X, size.Y = max(size.X, 1), max(size.Y, 1)
	}
	origin := vpCenter(size, window)
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

// toCanvas maps a window position inside frame back to canvas pixels.
// Positions outside the frame are pulled onto its border.
func toCanvas(frame image.Rectangle, canvas image.Point, x, y float32) (int, int) {
	if frame.Empty() {
		return 0, 0
	}
	cx := int((float64(x) - float64(frame.Min.X)) * float64(canvas.X) / float64(frame.Dx()))
	cy := int((float64(y) - float64(frame.Min.Y)) * float64(canvas.Y) / float64(frame.Dy()))
	return fractals.ClampInt(cx, 0, canvas.X-1), fractals.ClampInt(cy, 0, canvas.Y-1)
}
