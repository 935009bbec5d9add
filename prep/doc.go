// Package prep deduplicates and lexicographically orders a point set
// before it is handed to package delaunay. Deduplication is by
// coordinate equality; ordering is ascending (X, then Y) and total, so
// the result is deterministic regardless of input order.
package prep
