package fractals

import (
	"image"
)

// Segment is a line between two pixel coordinates.
type Segment struct {
	P1, P2 image.Point
}

// Seg is shorthand for a Segment from (x1, y1) to (x2, y2).
func Seg(x1, y1, x2, y2 int) Segment {
	return Segment{P1: image.Pt(x1, y1), P2: image.Pt(x2, y2)}
}

// Crosses returns true if the other segment crosses s.
// Touching end points count as crossing.
func (s Segment) Crosses(other Segment) bool {
	return Crosses(s.P1, s.P2, other.P1, other.P2)
}

// Code borrowed from C++ and https://bit.ly/3jyKGah
func onSegment(p, q, r image.Point) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

type turn int

const (
	colinear turn = iota
	clockwise
	counterClockwise
)

// orientation of the ordered triplet (p, q, r).
func orientation(p, q, r image.Point) turn {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if val == 0 {
		return colinear
	}
	if val > 0 {
		return clockwise
	}
	return counterClockwise
}

// Crosses returns true if segment p1-q1 and segment p2-q2 intersect.
func Crosses(p1, q1, p2, q2 image.Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	// Colinear end points lying on the other segment.
	if o1 == colinear && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == colinear && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == colinear && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == colinear && onSegment(p2, q1, q2) {
		return true
	}
	return false
}
