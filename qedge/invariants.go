package qedge

// CheckInvariants walks every quartet reachable from start and verifies
// two structural properties: the rot cycle has period exactly 4, and
// every OrigNext ring closes within a fixed bound of 1<<20 steps. It is
// O(V + E) and is meant for debug builds (see
// delaunay.Options.DebugAssertInvariants), not for the hot path of a
// production triangulation.
func CheckInvariants(start QuadEdge) error {
	if !start.Valid() {
		return nil
	}

	seen := make(map[edgeRef]bool)
	stack := []QuadEdge{start}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[e.ref] {
			continue
		}
		seen[e.ref] = true

		if err := checkRotPeriod(e); err != nil {
			return err
		}
		if err := checkOrigRingCloses(e); err != nil {
			return err
		}

		stack = append(stack, e.OrigNext(), e.OrigPrev(), e.Rot(), e.Sym())
	}
	return nil
}

// checkRotPeriod verifies q.Rot() applied four times returns q, and
// applied twice does not.
func checkRotPeriod(q QuadEdge) error {
	r4 := q.Rot().Rot().Rot().Rot()
	if r4.ref != q.ref {
		return &InvariantError{Op: "rot-period-4", Ref: int(q.ref), Note: "q.Rot^4 != q"}
	}
	r2 := q.Rot().Rot()
	if r2.ref == q.ref {
		return &InvariantError{Op: "rot-period-4", Ref: int(q.ref), Note: "q.Rot^2 == q"}
	}
	return nil
}

// checkOrigRingCloses walks OrigNext from q and confirms it returns to q
// within a bound generous enough for any realistic subdivision, catching
// a corrupted ring (an infinite or broken cycle) in debug builds.
func checkOrigRingCloses(q QuadEdge) error {
	const maxRingSteps = 1 << 20
	cur := q.OrigNext()
	for i := 0; i < maxRingSteps; i++ {
		if cur.ref == q.ref {
			return nil
		}
		cur = cur.OrigNext()
	}
	return &InvariantError{Op: "orig-ring-closes", Ref: int(q.ref), Note: "OrigNext ring did not close"}
}
