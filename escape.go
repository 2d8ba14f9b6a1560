package fractals

import (
	"image/color"
	"iter"
	"math"
)

const (
	// MaxIterations is the default iteration cap for both escape-time fields.
	MaxIterations = 100
	// Boundary is the default escape radius.
	Boundary = 2.0
)

// DefaultJuliaC is the constant held fixed by the Julia field.
var DefaultJuliaC = complex(-0.8, 0.156)

// EscapeCount iterates z = z*z + c from z0 and returns the number of steps
// taken before |z| >= boundary or maxIter steps have been made. The
// magnitude test is done on squared values.
func EscapeCount(c, z0 complex128, maxIter int, boundary float64) int {
	bound2 := boundary * boundary
	cr, ci := real(c), imag(c)
	zr, zi := real(z0), imag(z0)
	n := 0
	for zr*zr+zi*zi < bound2 && n < maxIter {
		zr, zi = zr*zr-zi*zi+cr, 2.0*zr*zi+ci
		n++
	}
	return n
}

// Intensity maps an escape count to a gray level. Points that never escape
// saturate at 255.
func Intensity(count, maxIter int) uint8 {
	if maxIter <= 0 {
		return 0
	}
	v := math.Round(255.0 * float64(count) / float64(maxIter))
	return uint8(Clamp(v, 0, 255))
}

// Gray returns the opaque gray color for an escape count.
func Gray(count, maxIter int) color.RGBA {
	v := Intensity(count, maxIter)
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// Pixel is one evaluated sample of an escape-time field.
type Pixel struct {
	X, Y  int
	Count int
}

// Field evaluates an escape-time fractal over a whole canvas.
type Field struct {
	MaxIter  int
	Boundary float64
}

// DefaultField uses MaxIterations and Boundary.
var DefaultField = Field{MaxIter: MaxIterations, Boundary: Boundary}

// Mandelbrot sweeps every pixel of the viewport's canvas, using the
// pixel's plane coordinate as both the start value and the constant.
// Pixels come out column-major: x outer, y inner.
func (f Field) Mandelbrot(vp Viewport) iter.Seq[Pixel] {
	return f.scan(vp.Width, vp.Height, func(x, y int) int {
		c := vp.ToPlane(x, y)
		return EscapeCount(c, c, f.MaxIter, f.Boundary)
	})
}

// Julia sweeps a width x height canvas over the fixed rect, holding c
// constant and starting each orbit at the pixel's plane coordinate.
func (f Field) Julia(c complex128, rect PlaneRect, width, height int) iter.Seq[Pixel] {
	return f.scan(width, height, func(x, y int) int {
		return EscapeCount(c, rect.ToPlane(x, y, width, height), f.MaxIter, f.Boundary)
	})
}

func (f Field) scan(width, height int, count func(x, y int) int) iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				if !yield(Pixel{X: x, Y: y, Count: count(x, y)}) {
					return
				}
			}
		}
	}
}
