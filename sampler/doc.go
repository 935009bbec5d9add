// Package sampler implements Bridson's fast Poisson-disk sampling in two
// dimensions: a set of points in a bounded rectangle, no two closer than
// a given radius, generated in expected O(n) time via a background grid.
//
// It is a natural feeder for package delaunay — triangulating a
// Poisson-disk point set gives a well-spaced mesh without hand-authored
// coordinates — but sampler has no dependency on delaunay or any other
// package in this module beyond point; the dependency runs the other
// way, caller -> sampler -> point.
package sampler
