// Package delaunay_test provides runnable examples for the Delaunay
// builder, following the "go test -run Example" convention.
package delaunay_test

import (
	"fmt"

	"github.com/katalvlaran/quadedge/delaunay"
	"github.com/katalvlaran/quadedge/point"
	"github.com/katalvlaran/quadedge/qedge"
)

// ExampleTriangulate triangulates a single ccw triangle and prints its
// three edges in canonical sorted order.
func ExampleTriangulate() {
	pts := []point.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	ldo, _, err := delaunay.Triangulate(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range qedge.Edges(ldo) {
		fmt.Printf("(%.0f,%.0f)-(%.0f,%.0f)\n", e.A.X, e.A.Y, e.B.X, e.B.Y)
	}
	// Output:
	// (0,0)-(0,1)
	// (0,0)-(1,0)
	// (0,1)-(1,0)
}
