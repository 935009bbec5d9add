package qedge

// Splice is the only primitive that mutates connectivity. Given
// alpha = Rot(OrigNext(a)), beta = Rot(OrigNext(b)), it atomically swaps
// the next pointers of (a, b) and of (alpha, beta).
//
// If Orig(a) and Orig(b) sit on distinct rings, splicing merges them
// into one; if they sit on the same ring, splicing splits it into two.
// The dual rings around the corresponding faces undergo the inverse
// change simultaneously, preserving the quartet coupling. Splice is its
// own inverse: Splice(a, b) twice in a row is a topological no-op.
//
// Panics if a and b belong to different Subdivisions.
//
// Complexity: O(1).
func Splice(a, b QuadEdge) {
	requireSameSub(a, b)

	alpha := a.OrigNext().Rot()
	beta := b.OrigNext().Rot()

	aNext, bNext := a.next(), b.next()
	a.setNext(bNext)
	b.setNext(aNext)

	alphaNext, betaNext := alpha.next(), beta.next()
	alpha.setNext(betaNext)
	beta.setNext(alphaNext)
}

// Connect allocates a new edge from Dest(a) to Orig(b) and splices it in
// so that a, b, and the new edge c bound a common left face. Returns c.
//
// Complexity: O(1).
func Connect(a, b QuadEdge) QuadEdge {
	requireSameSub(a, b)

	c := a.sub.MakeEdge(a.Dest(), b.Orig())
	Splice(c, a.LeftNext())
	Splice(c.Sym(), b)
	return c
}

// Disconnect removes q from the Subdivision: after the call, q's quartet
// is isolated (a singleton ring around each endpoint) and no other
// retained handle can reach it through navigation. The quartet's arena
// slot is returned to the free list for reuse by a later MakeEdge;
// continuing to use q after Disconnect is a caller error, the same as
// using a pointer after a free.
//
// Complexity: O(1).
func Disconnect(q QuadEdge) {
	Splice(q, q.OrigPrev())
	Splice(q.Sym(), q.Sym().OrigPrev())

	base := (q.ref / 4) * 4
	q.sub.freeBases = append(q.sub.freeBases, base)
}

// Swap flips the diagonal q of the convex quadrilateral whose two
// triangles share q: it detaches q from its current endpoints and
// re-attaches it along the left-next edges of its former neighbors,
// reassigning Orig(q) and Dest(q) to those neighbors' destinations.
//
// Swap assumes q is an interior edge of two triangles forming a convex
// quadrilateral; calling it on a hull edge or within a non-quadrilateral
// face produces a structurally valid but geometrically meaningless
// result — the caller is responsible for that precondition.
//
// Complexity: O(1).
func Swap(q QuadEdge) {
	a := q.OrigPrev()
	b := q.Sym().OrigPrev()

	Splice(q, a)
	Splice(q.Sym(), b)

	Splice(q, a.LeftNext())
	Splice(q.Sym(), b.LeftNext())

	q.SetOrig(a.Dest())
	q.SetDest(b.Dest())
}
