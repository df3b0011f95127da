package geometry

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/waterways/gridgraph"
)

// Validity tokens reported for an explicitly supplied path.
const (
	Valid   = "VALID"
	Invalid = "INVALID"
)

// ManhattanDistance returns |ax-bx| + |ay-by|.
func ManhattanDistance(a, b gridgraph.Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// SegmentsIntersect reports whether the closed segments p1p2 and q1q2 have
// any point in common, including touching endpoints and collinear overlap.
// The result is symmetric in segment order and in endpoint order.
func SegmentsIntersect(p1, p2, q1, q2 gridgraph.Position) bool {
	d1 := orientation(q1, q2, p1)
	d2 := orientation(q1, q2, p2)
	d3 := orientation(p1, p2, q1)
	d4 := orientation(p1, p2, q2)

	// proper crossing
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	// an endpoint lying on the other segment
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

// HasDiagonalIntersection reports whether any two segments of the polyline
// (consecutive point pairs) intersect, skipping every pair of segments that
// share one of their four endpoints.
func HasDiagonalIntersection(points []gridgraph.Position) bool {
	for i := 0; i+1 < len(points); i++ {
		for j := i + 1; j+1 < len(points); j++ {
			if crosses(points[i], points[i+1], points[j], points[j+1]) {
				return true
			}
		}
	}

	return false
}

// IntroducesIntersection reports whether appending next to path would make
// the new last segment intersect one of the existing segments, using the
// same shared-endpoint exclusion as HasDiagonalIntersection.
//
// If HasDiagonalIntersection(path) is false, then
// IntroducesIntersection(path, next) == HasDiagonalIntersection(append(path, next)).
func IntroducesIntersection(path []gridgraph.Position, next gridgraph.Position) bool {
	if len(path) == 0 {
		return false
	}
	last := path[len(path)-1]
	for i := 0; i+1 < len(path); i++ {
		if crosses(path[i], path[i+1], last, next) {
			return true
		}
	}

	return false
}

// HasSelfIntersection reports whether points revisits a position or any two
// of its non-adjacent segments intersect.
func HasSelfIntersection(points []gridgraph.Position) bool {
	seen := mapset.New[gridgraph.Position]()
	for _, p := range points {
		if seen.Has(p) {
			return true
		}
		seen.Put(p)
	}

	return HasDiagonalIntersection(points)
}

// Validity renders HasSelfIntersection as the VALID / INVALID token.
func Validity(points []gridgraph.Position) string {
	if HasSelfIntersection(points) {
		return Invalid
	}

	return Valid
}

// crosses applies the shared-endpoint exclusion before testing intersection.
func crosses(a1, a2, b1, b2 gridgraph.Position) bool {
	if a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2 {
		return false
	}

	return SegmentsIntersect(a1, a2, b1, b2)
}

// orientation returns the sign of the cross product (b-a)×(c-a):
// +1 counter-clockwise, -1 clockwise, 0 collinear.
func orientation(a, b, c gridgraph.Position) int {
	v := int64(b.X-a.X)*int64(c.Y-a.Y) - int64(b.Y-a.Y)*int64(c.X-a.X)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}

	return 0
}

// onSegment reports whether c, already known to be collinear with ab,
// lies within the bounding box of ab.
func onSegment(a, b, c gridgraph.Position) bool {
	return min(a.X, b.X) <= c.X && c.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= c.Y && c.Y <= max(a.Y, b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
