package fractals

import (
	"iter"
	"math"
)

const (
	// DefaultKochDepth is the recursion depth of the snowflake.
	DefaultKochDepth = 5
	// DefaultKochRadius is the snowflake's circumradius in pixels.
	DefaultKochRadius = 200
)

// KochEdge returns the segments of one Koch curve from (x1, y1) to
// (x2, y2). Each level replaces a segment with four: start to first third,
// first third to apex, apex to second third, second third to end. The apex
// sits one third of the segment's length off its middle, rotated +90
// degrees. Every level, including the last, first subtracts pan from both
// end points. Depth k yields 4^k segments.
func KochEdge(x1, y1, x2, y2, depth int, pan Pan) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		kochEdge(yield, pan, x1, y1, x2, y2, depth)
	}
}

func kochEdge(yield func(Segment) bool, pan Pan, x1, y1, x2, y2, depth int) bool {
	x1, y1 = pan.subtract(x1, y1)
	x2, y2 = pan.subtract(x2, y2)
	if depth <= 0 {
		return yield(Seg(x1, y1, x2, y2))
	}

	dx, dy := x2-x1, y2-y1
	ax, ay := x1+dx/3, y1+dy/3
	bx, by := x1+2*dx/3, y1+2*dy/3
	tipX := (ax+bx)/2 - dy/3
	tipY := (ay+by)/2 + dx/3

	return kochEdge(yield, pan, x1, y1, ax, ay, depth-1) &&
		kochEdge(yield, pan, ax, ay, tipX, tipY, depth-1) &&
		kochEdge(yield, pan, tipX, tipY, bx, by, depth-1) &&
		kochEdge(yield, pan, bx, by, x2, y2, depth-1)
}

// Snowflake runs KochEdge over the three edges of the equilateral triangle
// inscribed in the circle of the given radius around (cx, cy).
func Snowflake(cx, cy, radius, depth int, pan Pan) iter.Seq[Segment] {
	var xs, ys [3]int
	for i := range xs {
		a := float64(i) * 2 * math.Pi / 3
		xs[i] = int(float64(cx) + float64(radius)*math.Cos(a))
		ys[i] = int(float64(cy) + float64(radius)*math.Sin(a))
	}
	return func(yield func(Segment) bool) {
		for i := range xs {
			j := (i + 1) % len(xs)
			if !kochEdge(yield, pan, xs[i], ys[i], xs[j], ys[j], depth) {
				return
			}
		}
	}
}
