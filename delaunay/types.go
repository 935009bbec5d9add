package delaunay

import (
	"github.com/katalvlaran/quadedge/prep"
)

// ErrInsufficientPoints indicates fewer than 2 distinct input points were
// supplied. Re-exported from package prep since it is the builder's own
// precondition: Triangulate runs prep.Prepare internally and surfaces
// exactly this sentinel when the prepared set is too small.
var ErrInsufficientPoints = prep.ErrInsufficientPoints

// Options configures a single Triangulate call.
type Options struct {
	// DebugAssertInvariants enables qedge.CheckInvariants' structural
	// consistency checks, run once on the finished subdivision before
	// Triangulate returns (not after each merge step). Off by default:
	// the checks are O(V+E) and meant for development, not the hot path
	// of a production triangulation.
	DebugAssertInvariants bool

	// StackThreshold is recorded but not yet consulted by build: recursion
	// depth is O(log n) and Go's goroutine stacks grow dynamically, so no
	// realistic input needs an explicit work stack. The field exists so a
	// future revision targeting a fixed-stack runtime can add that path
	// without changing this struct's shape.
	StackThreshold int
}

// Option mutates Options before a Triangulate call.
type Option func(*Options)

// DefaultOptions returns the zero-value Options: invariant assertions
// off, no stack threshold recorded.
func DefaultOptions() Options {
	return Options{}
}

// WithDebugAssertInvariants enables qedge.CheckInvariants' structural
// consistency checks on the finished subdivision; a failure is returned
// as Triangulate's error.
func WithDebugAssertInvariants() Option {
	return func(o *Options) { o.DebugAssertInvariants = true }
}

// WithStackThreshold records a recursion-depth threshold for a future
// explicit-stack build path. Panics if n is negative.
func WithStackThreshold(n int) Option {
	if n < 0 {
		panic("delaunay: WithStackThreshold(n<0)")
	}
	return func(o *Options) { o.StackThreshold = n }
}
