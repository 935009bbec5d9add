package delaunay

import (
	"github.com/katalvlaran/quadedge/point"
	"github.com/katalvlaran/quadedge/prep"
	"github.com/katalvlaran/quadedge/qedge"
)

// Triangulate computes the Delaunay triangulation of points and returns a
// pair (ldo, rdo) of Quad-Edge handles on the convex hull: ldo is the
// ccw-first edge out of the leftmost point, rdo is the cw-first edge into
// the rightmost point.
//
// Input points are deduplicated and lexicographically sorted internally
// (see package prep); callers do not need to pre-sort. Fails with
// ErrInsufficientPoints when fewer than 2 distinct points remain after
// deduplication.
//
// Complexity: O(n log n) time, O(n) edges.
func Triangulate(points []point.Point, opts ...Option) (ldo, rdo qedge.QuadEdge, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	prepared, err := prep.PrepareOrError(points)
	if err != nil {
		return qedge.QuadEdge{}, qedge.QuadEdge{}, err
	}

	sub := qedge.NewSubdivision()
	ldo, rdo = build(sub, prepared, cfg)

	if cfg.DebugAssertInvariants {
		if ierr := qedge.CheckInvariants(ldo); ierr != nil {
			return qedge.QuadEdge{}, qedge.QuadEdge{}, ierr
		}
	}
	return ldo, rdo, nil
}

// build dispatches to the base cases (|points| == 2 or 3) or the recursive
// divide-and-conquer merge otherwise. points is assumed already deduplicated
// and lexicographically sorted with len(points) >= 2.
func build(sub *qedge.Subdivision, points []point.Point, cfg Options) (ldo, rdo qedge.QuadEdge) {
	switch len(points) {
	case 2:
		return buildBaseTwo(sub, points)
	case 3:
		return buildBaseThree(sub, points)
	default:
		return buildRecursive(sub, points, cfg)
	}
}

// buildBaseTwo handles |P| = 2: a single edge.
func buildBaseTwo(sub *qedge.Subdivision, points []point.Point) (ldo, rdo qedge.QuadEdge) {
	a := sub.MakeEdge(points[0], points[1])
	return a, a.Sym()
}

// buildBaseThree handles |P| = 3, including the collinear case.
func buildBaseThree(sub *qedge.Subdivision, points []point.Point) (ldo, rdo qedge.QuadEdge) {
	a := sub.MakeEdge(points[0], points[1])
	b := sub.MakeEdge(points[1], points[2])
	qedge.Splice(a.Sym(), b)

	switch {
	case point.Orientation(points[0], points[1], points[2]) > 0:
		qedge.Connect(b, a)
		return a, b.Sym()
	case point.Orientation(points[0], points[2], points[1]) > 0:
		c := qedge.Connect(b, a)
		return c.Sym(), c
	default:
		// Collinear: a path of two edges, no triangular face.
		return a, b.Sym()
	}
}
