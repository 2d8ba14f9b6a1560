package fractals

import (
	"iter"
	"math"
)

const (
	// DefaultTreeDepth is the default branching depth.
	DefaultTreeDepth = 10

	branchShrink = 0.7
	branchSpread = math.Pi / 6
)

// Tree returns the branches of a binary tree rooted at (x, y). A branch
// runs from (x, y) shifted by +pan to the end point
// (x + length*cos(angle), y - length*sin(angle)); each end point grows two
// children 0.7 times as long, turned +-30 degrees. Depth 0 yields nothing,
// depth k yields 2^k - 1 branches, parents before children.
func Tree(x, y int, length, angle float64, depth int, pan Pan) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		tree(yield, pan, x, y, length, angle, depth)
	}
}

func tree(yield func(Segment) bool, pan Pan, x, y int, length, angle float64, depth int) bool {
	if depth <= 0 {
		return true
	}
	x2 := x + int(length*math.Cos(angle))
	y2 := y - int(length*math.Sin(angle))

	sx, sy := pan.add(x, y)
	if !yield(Seg(sx, sy, x2, y2)) {
		return false
	}
	length *= branchShrink
	return tree(yield, pan, x2, y2, length, angle+branchSpread, depth-1) &&
		tree(yield, pan, x2, y2, length, angle-branchSpread, depth-1)
}
