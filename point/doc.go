// Package point defines the Point value type and the two oriented
// determinant predicates that drive every geometric decision in this
// module: Orientation and InCircle.
//
// Points are plain values — copied freely, compared by coordinate
// equality, and ordered lexicographically by (X, Y). Predicates never
// fail: they return a discrete sign (-1, 0, +1), and the zero case
// (collinear / cocircular) is classified consistently within a single
// run but is not guaranteed to match any particular tie-break rule.
//
// Complexity: every function in this package is O(1).
package point
