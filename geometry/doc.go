// Package geometry provides exact integer predicates over grid positions:
// Manhattan distance, planar segment intersection, and self-intersection
// tests for polylines drawn through cell coordinates.
//
// All arithmetic is done on int64 cross products, so results are exact for
// any coordinates that fit in an int. Collinear overlap and touching count
// as intersection in SegmentsIntersect; the polyline predicates exclude
// pairs of segments that share an endpoint, since consecutive segments of a
// path always do.
//
// Complexity:
//
//   - ManhattanDistance, SegmentsIntersect: O(1).
//   - HasDiagonalIntersection:             O(n²) segment tests for n points.
//   - IntroducesIntersection:              O(n) segment tests.
//   - HasSelfIntersection:                 O(n²).
package geometry
