// Package delaunay implements the Guibas–Stolfi divide-and-conquer
// Delaunay triangulation over package qedge.
//
// Triangulate takes a lexicographically ordered, duplicate-free point set
// (see package prep) and returns a pair (ldo, rdo) of Quad-Edge handles on
// the convex hull: ldo is the counterclockwise-first edge out of the
// leftmost point, rdo is the clockwise-first edge into the rightmost
// point. The full subdivision is reachable from either handle via
// qedge.Edges / qedge.Faces.
//
// Algorithm: split the point set in half, recursively triangulate each
// half, find the lower common tangent joining the two sub-hulls, then
// merge the halves edge by edge, at each step adding the cross edge that
// satisfies the empty-circumcircle property against both sides and
// disconnecting any edge whose circumcircle is violated by a better
// candidate. See triangulate.go for the base cases and merge.go for the
// tangent search and merge loop.
//
// Complexity: O(n log n) time, O(n) edges.
package delaunay
