// Package qedge implements the Guibas–Stolfi Quad-Edge data structure: the
// topological backbone of a planar subdivision and its dual.
//
// A Subdivision is an arena that owns every quartet of edge records it
// creates. QuadEdge is a non-owning handle — a (Subdivision, index) pair —
// returned by navigation and mutation operations; it stays valid for the
// lifetime of the Subdivision that created it unless its edge is removed
// by Disconnect (see "Arena and reclamation" below).
//
// Five primitives mutate topology:
//
//	MakeEdge   — allocate a fresh, disconnected quartet
//	Splice     — the single connectivity primitive; an involution on (a, b)
//	Connect    — build a new edge bridging two existing edges' faces
//	Disconnect — remove an edge, leaving its quartet isolated
//	Swap       — flip the diagonal of a convex quadrilateral
//
// Everything else — Sym, RotInv, Orig, Dest, OrigNext, OrigPrev, DestNext,
// DestPrev, LeftNext, LeftPrev, RightNext, RightPrev — is pure O(1)
// navigation with no side effects.
//
// Concurrency: a Subdivision under construction is not safe to access from
// more than one goroutine. This package carries no locking because a
// Subdivision's lifetime is scoped to a single triangulation call: it is
// built up by one caller, handed off as a finished result, and never mutated
// concurrently with itself. A caller that shares a Subdivision across
// goroutines is responsible for its own synchronization.
//
// Arena and reclamation: quartets are stored four-records-at-a-time in a
// flat slice; rot is computed arithmetically (a quartet's four records
// always occupy consecutive slots), so no explicit rot pointer is stored.
// Disconnect returns a quartet's slot to a free list for reuse by a later
// MakeEdge; retaining a QuadEdge handle past its Disconnect is a caller
// error, exactly as retaining a pointer past a free would be.
package qedge
