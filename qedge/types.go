package qedge

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quadedge/point"
)

// Sentinel errors for qedge operations.
var (
	// ErrInvariantViolation is the base sentinel wrapped by every
	// InvariantError produced by the optional debug-mode consistency
	// checks (CheckInvariants). It is never returned by a structurally
	// valid call — seeing it indicates a bug in a caller that mutated a
	// Subdivision outside the Quad-Edge algebra, or a bug in this package.
	ErrInvariantViolation = errors.New("qedge: invariant violation")

	// ErrCrossSubdivision indicates two QuadEdge handles passed to the
	// same call originate from different Subdivision arenas. Splicing
	// edges across arenas is always a programmer error, never a data
	// error, so callers see it as a panic (see requireSameSub) rather
	// than a returned error.
	ErrCrossSubdivision = errors.New("qedge: quad-edges belong to different subdivisions")

	// ErrNoOrigin indicates Orig was called on a dual-edge record, which
	// carries no origin point by construction (see record.hasOrig).
	ErrNoOrigin = errors.New("qedge: dual edge has no origin point")
)

// InvariantError reports which consistency check failed and on which
// edge, so a caller's debug build can log actionable context instead of a
// bare sentinel.
type InvariantError struct {
	Op   string // the check that failed, e.g. "rot-period-4"
	Ref  int    // the offending record index
	Note string // human-readable detail
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("qedge: invariant violation in %s at ref %d: %s", e.Op, e.Ref, e.Note)
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }

// edgeRef indexes a single quartet record within a Subdivision's arena.
// A quartet occupies four consecutive indices (base, base+1, base+2,
// base+3); rot advances by one within that block, wrapping at 4.
type edgeRef int

const noRef edgeRef = -1

// record is one of the four directed quad-edge records in a quartet.
// Primal records (q0, q2 of a quartet) carry an origin point; dual
// records (q1, q3) carry none — hasOrig distinguishes the two without a
// separate tagged type, per the "duck-typed QuadEdge" design note.
type record struct {
	orig    point.Point
	hasOrig bool
	next    edgeRef
	data    any
}

// Subdivision is an arena owning every quartet reachable from any QuadEdge
// it has returned. It has no exported fields; all access goes through
// QuadEdge handles and the package-level mutation primitives.
type Subdivision struct {
	recs      []record
	freeBases []edgeRef
}

// NewSubdivision returns an empty arena ready for MakeEdge calls.
func NewSubdivision() *Subdivision {
	return &Subdivision{}
}

// QuadEdge is a non-owning handle into a Subdivision: one directed record
// of one quartet. The zero value is not a valid handle.
type QuadEdge struct {
	sub *Subdivision
	ref edgeRef
}

// Valid reports whether q refers to a record index inside its
// Subdivision's arena. It does not detect a quartet released by
// Disconnect.
func (q QuadEdge) Valid() bool {
	return q.sub != nil && q.ref >= 0 && int(q.ref) < len(q.sub.recs)
}

func (q QuadEdge) rec() *record {
	return &q.sub.recs[q.ref]
}

func requireSameSub(a, b QuadEdge) {
	if a.sub != b.sub {
		panic(ErrCrossSubdivision)
	}
}
