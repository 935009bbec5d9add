// Package quickselect finds the k-th smallest element of a slice in
// expected linear time via three-way (less/equal/more) partitioning
// around a middle-element pivot, without fully sorting the slice.
//
// The element type and ordering are both supplied by the caller (via Go
// generics and a comparator function), so the same implementation serves a
// plain numeric slice or a slice of points ordered by an arbitrary axis.
package quickselect
