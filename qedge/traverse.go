package qedge

import (
	"sort"

	"github.com/katalvlaran/quadedge/point"
)

// Edge is one undirected edge of a primal subdivision, reported with its
// two endpoints in an arbitrary but fixed order (A, B with A <= B under
// point.Less, after sorting by Edges).
type Edge struct {
	A, B point.Point
}

// Edges walks every quartet reachable from start through OrigNext and
// Sym and reports each undirected primal edge exactly once, sorted
// lexicographically by (A, B) for deterministic output — the edge set
// a Delaunay build produces does not depend on the order its input
// points were given in, so a fixed output order makes that invariance
// directly comparable.
//
// Complexity: O(V + E) in the reachable subdivision.
func Edges(start QuadEdge) []Edge {
	if !start.Valid() {
		return nil
	}

	visited := make(map[edgeRef]bool)
	var out []Edge

	stack := []QuadEdge{start}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		base := (e.ref / 4) * 4
		if visited[base] {
			continue
		}
		visited[base] = true

		a, b := e.Orig(), e.Dest()
		if point.Less(b, a) {
			a, b = b, a
		}
		out = append(out, Edge{A: a, B: b})

		// Explore every edge incident to either endpoint to reach the
		// whole connected component.
		stack = append(stack, e.OrigNext(), e.OrigPrev(), e.Sym().OrigNext(), e.Sym().OrigPrev())
	}

	sort.Slice(out, func(i, j int) bool {
		if !point.Equal(out[i].A, out[j].A) {
			return point.Less(out[i].A, out[j].A)
		}
		return point.Less(out[i].B, out[j].B)
	})
	return out
}

// Faces enumerates the bounded triangular faces reachable from start by
// walking LeftNext around each face exactly three times; any face whose
// LeftNext cycle does not close in exactly three steps is skipped (it is
// either the unbounded outer face or, for collinear input, not a
// triangle at all).
//
// Complexity: O(V + E) in the reachable subdivision.
func Faces(start QuadEdge) [][3]point.Point {
	if !start.Valid() {
		return nil
	}

	visitedEdge := make(map[edgeRef]bool)
	var faces [][3]point.Point

	stack := []QuadEdge{start}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visitedEdge[e.ref] {
			continue
		}

		e1 := e.LeftNext()
		e2 := e1.LeftNext()
		e3 := e2.LeftNext()

		// Mark every directed edge of this face visited so the same
		// triangle is never emitted twice, regardless of which of its
		// three edges is popped first.
		visitedEdge[e.ref] = true
		visitedEdge[e1.ref] = true
		visitedEdge[e2.ref] = true

		// Only record a genuine triangle: three LeftNext steps back to e,
		// and a strictly positive (ccw) orientation — an unbounded or
		// degenerate face fails one of these.
		if e3.ref == e.ref {
			p1, p2, p3 := e.Orig(), e1.Orig(), e2.Orig()
			if point.Orientation(p1, p2, p3) > 0 {
				faces = append(faces, [3]point.Point{p1, p2, p3})
			}
		}

		stack = append(stack, e.OrigNext(), e.Sym(), e1.OrigNext(), e1.Sym(), e2.OrigNext(), e2.Sym())
	}

	return faces
}
