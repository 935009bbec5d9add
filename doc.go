// Package quadedge is a 2D computational-geometry toolkit built around the
// Guibas–Stolfi Quad-Edge data structure: a planar-subdivision engine plus a
// divide-and-conquer Delaunay triangulator on top of it.
//
// What is quadedge?
//
//	A single-threaded, pure-Go library organized in layers:
//
//	  • point/       — Point type and the Orientation/InCircle predicates
//	  • qedge/       — the Quad-Edge topology: MakeEdge, Splice, Connect,
//	                    Disconnect, Swap, and the full navigation algebra
//	  • delaunay/    — divide-and-conquer Delaunay triangulation over qedge
//	  • prep/        — dedup + lexicographic sort of input points
//	  • sampler/     — Bridson Poisson-disk point sampling (feeds triangulate)
//	  • quickselect/ — generic k-th order statistic (feeds callers that
//	                    split point sets by median before recursing)
//	  • render/      — a documented Renderer interface with no implementation
//
// Why this layering?
//
//   - Layer separation matches the algorithm, not the file system: the
//     builder (delaunay) only ever talks to qedge for topology and to point
//     for geometry, never the reverse.
//   - Single-threaded by contract: a Subdivision under construction is not
//     safe to touch from more than one goroutine (see qedge's doc comment).
//   - Arena ownership: every QuadEdge handle is scoped to the Subdivision
//     that created it; there is no global quartet pool.
//
// Quick usage:
//
//	pts := prep.Prepare(points)
//	ldo, rdo, err := delaunay.Triangulate(pts)
//	for _, e := range qedge.Edges(ldo) {
//	    fmt.Println(e.A, e.B)
//	}
package quadedge
