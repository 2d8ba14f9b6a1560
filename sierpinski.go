package fractals

import (
	"image"
	"iter"
)

// DefaultSierpinskiDepth is the default subdivision depth.
const DefaultSierpinskiDepth = 6

// Triangle is three pixel corners.
type Triangle [3]image.Point

// Tri is shorthand for a Triangle with corners (x1, y1), (x2, y2), (x3, y3).
func Tri(x1, y1, x2, y2, x3, y3 int) Triangle {
	return Triangle{image.Pt(x1, y1), image.Pt(x2, y2), image.Pt(x3, y3)}
}

// Edges returns the triangle's three sides in corner order.
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{
		{P1: t[0], P2: t[1]},
		{P1: t[1], P2: t[2]},
		{P1: t[2], P2: t[0]},
	}
}

// Sierpinski returns the edges of the Sierpinski triangle built on t.
// Above depth 0 the corners are shifted by -pan, then the three corner
// sub-triangles formed by the edge midpoints are subdivided, leaving out
// the middle one. Depth k yields 3^k triangles, 3^(k+1) segments.
func Sierpinski(t Triangle, depth int, pan Pan) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		sierpinski(yield, pan, t, depth)
	}
}

func sierpinski(yield func(Segment) bool, pan Pan, t Triangle, depth int) bool {
	if depth <= 0 {
		for _, e := range t.Edges() {
			if !yield(e) {
				return false
			}
		}
		return true
	}

	for i := range t {
		t[i].X, t[i].Y = pan.subtract(t[i].X, t[i].Y)
	}
	m01 := midpoint(t[0], t[1])
	m12 := midpoint(t[1], t[2])
	m20 := midpoint(t[2], t[0])

	return sierpinski(yield, pan, Triangle{t[0], m01, m20}, depth-1) &&
		sierpinski(yield, pan, Triangle{m01, t[1], m12}, depth-1) &&
		sierpinski(yield, pan, Triangle{m20, m12, t[2]}, depth-1)
}

func midpoint(a, b image.Point) image.Point {
	return image.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}
