package fractals

import (
	"image"
	"iter"
)

const (
	// DefaultFernPoints is how many points a fern rendering draws.
	DefaultFernPoints = 100000

	fernPixelsPerUnit = 50.0
	totalWeight       = 100.0
)

// AffineMap is x' = A*x + B*y + E, y' = C*x + D*y + F.
type AffineMap struct {
	A, B, C, D, E, F float64
}

// Apply maps (x, y).
func (m AffineMap) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.E, m.C*x + m.D*y + m.F
}

// WeightedMap is an AffineMap with its selection weight out of 100.
type WeightedMap struct {
	Name string
	AffineMap
	Weight float64
}

// FernMaps are the four Barnsley fern maps: stem, large leaflet, left and
// right leaflet.
var FernMaps = []WeightedMap{
	{Name: "stem", AffineMap: AffineMap{D: 0.16}, Weight: 1},
	{Name: "large", AffineMap: AffineMap{A: 0.85, B: 0.04, C: -0.04, D: 0.85, F: 1.6}, Weight: 85},
	{Name: "left", AffineMap: AffineMap{A: 0.2, B: -0.26, C: 0.23, D: 0.22, F: 1.6}, Weight: 7},
	{Name: "right", AffineMap: AffineMap{A: -0.15, B: 0.28, C: 0.26, D: 0.24, F: 0.44}, Weight: 7},
}

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// randRange returns a uniform value in [low, high).
func randRange(src RandomSource, low, high float64) float64 {
	if high < low {
		low, high = high, low
	}
	return src.Float64()*(high-low) + low
}

// Point is a point of the IFS plane.
type Point struct {
	X, Y float64
}

// IFS is an iterated function system. Its state is only the current point.
type IFS struct {
	maps []WeightedMap
	src  RandomSource
	cur  Point
}

// NewIFS starts a system at the origin. The map weights are taken as bands
// over [0, 100) in order.
func NewIFS(maps []WeightedMap, src RandomSource) *IFS {
	return &IFS{maps: maps, src: src}
}

// NewFern returns the Barnsley fern system.
func NewFern(src RandomSource) *IFS {
	return NewIFS(FernMaps, src)
}

// Choose returns the index of the map whose band holds r, r in [0, 100).
// Values past the last band select the last map.
func (f *IFS) Choose(r float64) int {
	acc := 0.0
	for i, m := range f.maps {
		acc += m.Weight
		if r < acc {
			return i
		}
	}
	return len(f.maps) - 1
}

// Next applies a randomly chosen map to the current point and returns the
// new point.
func (f *IFS) Next() Point {
	m := f.maps[f.Choose(randRange(f.src, 0, totalWeight))]
	f.cur.X, f.cur.Y = m.Apply(f.cur.X, f.cur.Y)
	return f.cur
}

// Points is the endless sequence of Next values. It continues from the
// system's current state; it cannot be restarted.
func (f *IFS) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for yield(f.Next()) {
		}
	}
}

// FernPixel maps a fern point to a width x height canvas: 50 pixels per
// unit, x centered, y growing up from the bottom edge.
func FernPixel(p Point, width, height int) image.Point {
	return image.Pt(
		int(float64(width)/2.0+fernPixelsPerUnit*p.X),
		int(float64(height)-fernPixelsPerUnit*p.Y),
	)
}
