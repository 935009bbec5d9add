package qedge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadedge/point"
	"github.com/katalvlaran/quadedge/qedge"
)

func TestSplice_IsInvolution(t *testing.T) {
	sub := qedge.NewSubdivision()
	a := sub.MakeEdge(point.Point{X: 0, Y: 0}, point.Point{X: 1, Y: 0})
	b := sub.MakeEdge(point.Point{X: 1, Y: 0}, point.Point{X: 1, Y: 1})

	before := a.Sym().OrigNext()
	qedge.Splice(a.Sym(), b)
	require.NotEqual(t, before, a.Sym().OrigNext(), "first splice must change the ring")

	qedge.Splice(a.Sym(), b)
	require.Equal(t, before, a.Sym().OrigNext(), "splice(a,b) twice must restore topology")
}

func TestConnect_SharesLeftFace(t *testing.T) {
	sub := qedge.NewSubdivision()
	p0 := point.Point{X: 0, Y: 0}
	p1 := point.Point{X: 1, Y: 0}
	p2 := point.Point{X: 1, Y: 1}

	a := sub.MakeEdge(p0, p1)
	b := sub.MakeEdge(p1, p2)
	qedge.Splice(a.Sym(), b)

	c := qedge.Connect(b, a)
	require.Equal(t, p2, c.Orig())
	require.Equal(t, p0, c.Dest())
	require.Equal(t, b, a.LeftNext())
	require.Equal(t, c, b.LeftNext())
	require.Equal(t, a, c.LeftNext())
}

func TestDisconnect_IsolatesQuartet(t *testing.T) {
	sub := qedge.NewSubdivision()
	a := sub.MakeEdge(point.Point{X: 0, Y: 0}, point.Point{X: 1, Y: 0})
	b := sub.MakeEdge(point.Point{X: 1, Y: 0}, point.Point{X: 1, Y: 1})
	qedge.Splice(a.Sym(), b)
	require.Equal(t, 2, sub.QuartetCount())

	qedge.Disconnect(b)

	// a's ring around its destination no longer reaches b.
	require.Equal(t, a.Sym(), a.Sym().OrigNext())
	require.Equal(t, 1, sub.QuartetCount())
}

func TestTriangle_BuildAndTraverse(t *testing.T) {
	sub := qedge.NewSubdivision()
	p0 := point.Point{X: 0, Y: 0}
	p1 := point.Point{X: 1, Y: 0}
	p2 := point.Point{X: 0, Y: 1}

	a := sub.MakeEdge(p0, p1)
	b := sub.MakeEdge(p1, p2)
	qedge.Splice(a.Sym(), b)
	c := qedge.Connect(b, a)

	require.NoError(t, qedge.CheckInvariants(a))

	edges := qedge.Edges(a)
	require.Len(t, edges, 3)

	faces := qedge.Faces(a)
	require.Len(t, faces, 1, "one ccw triangular face")

	require.Equal(t, p0, c.Dest())
}

func TestSwap_FlipsSquareDiagonal(t *testing.T) {
	sub := qedge.NewSubdivision()
	p0 := point.Point{X: 0, Y: 0}
	p1 := point.Point{X: 1, Y: 0}
	p2 := point.Point{X: 1, Y: 1}
	p3 := point.Point{X: 0, Y: 1}

	// Build two triangles sharing diagonal p0-p2: (p0,p1,p2) and (p0,p2,p3).
	e01 := sub.MakeEdge(p0, p1)
	e12 := sub.MakeEdge(p1, p2)
	qedge.Splice(e01.Sym(), e12)
	diag := qedge.Connect(e12, e01) // p2 -> p0

	e23 := sub.MakeEdge(p2, p3)
	qedge.Splice(e12.Sym(), e23)
	e30 := qedge.Connect(e23, diag.Sym()) // p3 -> p0, closes the square

	require.NoError(t, qedge.CheckInvariants(e01))
	_ = e30

	before := qedge.Faces(e01)
	require.Len(t, before, 2)

	qedge.Swap(diag)

	after := qedge.Faces(e01)
	require.Len(t, after, 2, "swap preserves face count on a convex quadrilateral")
	require.Equal(t, p3, diag.Orig(), "flipped diagonal runs p3 -> p1")
	require.Equal(t, p1, diag.Dest(), "flipped diagonal runs p3 -> p1")
}
