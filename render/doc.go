// Package render declares the output boundary for a triangulated
// subdivision: the Renderer interface a caller implements to draw the
// points and edges produced by package delaunay, via package qedge's
// traversal helpers.
//
// No implementation is provided. Nothing in the retrieved example
// corpus pulls in a rasterization or vector-graphics library (the
// corpus's closest analog, converterts, adapts between in-memory graph
// representations, never to pixels or an image format), so adding one
// here would be invention rather than a library used elsewhere for
// this concern. A caller wanting SVG, PNG, or terminal output
// implements Renderer directly.
package render

import "github.com/katalvlaran/quadedge/point"

// Renderer receives the geometry of a triangulated point set. Point
// coordinates are in the caller's own coordinate space; package render
// performs no scaling or projection.
type Renderer interface {
	// DrawPoints is called once with every input point.
	DrawPoints(points []point.Point) error

	// DrawEdges is called once with every undirected edge of the
	// subdivision, each endpoint pair reported exactly once.
	DrawEdges(edges [][2]point.Point) error
}
