// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: the Subdivision-owning constructor. No algorithmic logic lives
// here — just arena allocation and quartet wiring.

package qedge

import "github.com/katalvlaran/quadedge/point"

// MakeEdge allocates a fresh quartet representing a new edge from a to b,
// disconnected from the rest of the Subdivision. The quartet's initial
// state has two singleton primal rings (q0.next = q0, q2.next = q2) and
// one dual loop (q1.next = q3, q3.next = q1). Returns q0, the primal edge
// directed a -> b.
//
// Complexity: O(1) amortized (reuses a freed quartet slot when available).
func (s *Subdivision) MakeEdge(a, b point.Point) QuadEdge {
	base := s.allocQuartet()

	s.recs[base+0] = record{orig: a, hasOrig: true, next: base + 0}
	s.recs[base+1] = record{next: base + 3}
	s.recs[base+2] = record{orig: b, hasOrig: true, next: base + 2}
	s.recs[base+3] = record{next: base + 1}

	return QuadEdge{sub: s, ref: base}
}

// allocQuartet reserves four consecutive arena slots, preferring a
// previously Disconnect-ed block over growing the backing slice.
func (s *Subdivision) allocQuartet() edgeRef {
	if n := len(s.freeBases); n > 0 {
		base := s.freeBases[n-1]
		s.freeBases = s.freeBases[:n-1]
		return base
	}
	base := edgeRef(len(s.recs))
	s.recs = append(s.recs, record{}, record{}, record{}, record{})
	return base
}

// QuartetCount returns the number of live quartets (undirected edges)
// currently allocated in the arena, excluding freed-and-not-yet-reused
// slots. Useful for checking a triangulation's edge count against the
// standard 3n - 3 - h identity for n points with h on the convex hull.
//
// Complexity: O(1).
func (s *Subdivision) QuartetCount() int {
	total := len(s.recs) / 4
	return total - len(s.freeBases)
}
