package qedge

import "github.com/katalvlaran/quadedge/point"

// Rot returns the next record in q's quartet: the dual edge rotated 90
// degrees counterclockwise from q. Arithmetic, not stored — see the
// arena layout note in doc.go.
//
// Complexity: O(1).
func (q QuadEdge) Rot() QuadEdge {
	base := (q.ref / 4) * 4
	off := (q.ref - base + 1) % 4
	return QuadEdge{sub: q.sub, ref: base + off}
}

// Sym returns the same undirected edge in the opposite direction:
// q.Rot().Rot().
//
// Complexity: O(1).
func (q QuadEdge) Sym() QuadEdge {
	return q.Rot().Rot()
}

// RotInv returns the dual edge rotated 90 degrees clockwise: q.Rot().Sym().
//
// Complexity: O(1).
func (q QuadEdge) RotInv() QuadEdge {
	return q.Rot().Sym()
}

// next returns the record stored in q's next field: the next edge
// counterclockwise around Orig(q). This is the raw Guibas–Stolfi "next"
// field; OrigNext is its exported name.
func (q QuadEdge) next() QuadEdge {
	return QuadEdge{sub: q.sub, ref: q.rec().next}
}

// setNext rewrites q's stored next pointer. Only Splice calls this.
func (q QuadEdge) setNext(n QuadEdge) {
	q.rec().next = n.ref
}

// OrigNext returns the next edge counterclockwise around Orig(q).
//
// Complexity: O(1).
func (q QuadEdge) OrigNext() QuadEdge {
	return q.next()
}

// OrigPrev returns the previous edge counterclockwise around Orig(q).
//
// Complexity: O(1).
func (q QuadEdge) OrigPrev() QuadEdge {
	return q.Rot().next().Rot()
}

// DestNext returns the next edge counterclockwise around Dest(q).
//
// Complexity: O(1).
func (q QuadEdge) DestNext() QuadEdge {
	return q.Sym().next().Sym()
}

// DestPrev returns the previous edge counterclockwise around Dest(q).
//
// Complexity: O(1).
func (q QuadEdge) DestPrev() QuadEdge {
	return q.RotInv().next().RotInv()
}

// LeftNext returns the next edge counterclockwise around q's left face.
//
// Complexity: O(1).
func (q QuadEdge) LeftNext() QuadEdge {
	return q.RotInv().next().Rot()
}

// LeftPrev returns the previous edge counterclockwise around q's left face.
//
// Complexity: O(1).
func (q QuadEdge) LeftPrev() QuadEdge {
	return q.next().Sym()
}

// RightNext returns the next edge counterclockwise around q's right face.
//
// Complexity: O(1).
func (q QuadEdge) RightNext() QuadEdge {
	return q.Rot().next().RotInv()
}

// RightPrev returns the previous edge counterclockwise around q's right face.
//
// Complexity: O(1).
func (q QuadEdge) RightPrev() QuadEdge {
	return q.Sym().next()
}

// Orig returns q's origin point. Panics if q is a dual-edge record — a
// programmer error, since dual records never carry a point by
// construction.
func (q QuadEdge) Orig() point.Point {
	r := q.rec()
	if !r.hasOrig {
		panic(ErrNoOrigin)
	}
	return r.orig
}

// Dest returns q's destination point: Orig(Sym(q)).
func (q QuadEdge) Dest() point.Point {
	return q.Sym().Orig()
}

// SetOrig overwrites q's origin point in place. Used by Swap to
// reassign endpoints after the diagonal flip.
func (q QuadEdge) SetOrig(p point.Point) {
	r := q.rec()
	r.orig = p
	r.hasOrig = true
}

// SetDest overwrites q's destination point in place: SetOrig on Sym(q).
func (q QuadEdge) SetDest(p point.Point) {
	q.Sym().SetOrig(p)
}

// Data returns the caller-owned payload attached to q's quartet slot.
func (q QuadEdge) Data() any {
	return q.rec().data
}

// SetData attaches a caller-owned payload to q's quartet slot. qedge
// never interprets it.
func (q QuadEdge) SetData(v any) {
	q.rec().data = v
}
