package point

// Orientation returns the sign of the determinant
//
//	| x1 y1 1 |
//	| x2 y2 1 |
//	| x3 y3 1 |
//
// Positive means p1, p2, p3 run counterclockwise; negative means
// clockwise; zero means the three points are collinear.
//
// Complexity: O(1).
func Orientation(p1, p2, p3 Point) int {
	det := (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
	return sign(det)
}

// InCircle returns the sign of the 4x4 determinant
//
//	| x1 y1 x1²+y1² 1 |
//	| x2 y2 x2²+y2² 1 |
//	| x3 y3 x3²+y3² 1 |
//	| xd yd xd²+yd² 1 |
//
// Positive means d lies strictly inside the circumcircle of p1, p2, p3
// when that triple runs counterclockwise; for a clockwise triple the
// sign inverts. Callers are responsible for passing p1, p2, p3 in
// counterclockwise order — package delaunay arranges this.
//
// Complexity: O(1).
func InCircle(p1, p2, p3, d Point) int {
	// Translate so d sits at the origin; this keeps the expanded 4x4
	// determinant numerically comparable to the textbook 3x3 lifted form
	// without materializing a 4x4 matrix.
	ax, ay := p1.X-d.X, p1.Y-d.Y
	bx, by := p2.X-d.X, p2.Y-d.Y
	cx, cy := p3.X-d.X, p3.Y-d.Y

	aSq := ax*ax + ay*ay
	bSq := bx*bx + by*by
	cSq := cx*cx + cy*cy

	det := ax*(by*cSq-bSq*cy) -
		ay*(bx*cSq-bSq*cx) +
		aSq*(bx*cy-by*cx)

	return sign(det)
}

// RightOf reports whether p lies strictly to the right of the directed
// edge orig->dest, i.e. Orientation(p, dest, orig) > 0.
func RightOf(p, orig, dest Point) bool {
	return Orientation(p, dest, orig) > 0
}

// LeftOf reports whether p lies strictly to the left of the directed
// edge orig->dest, i.e. Orientation(p, orig, dest) > 0.
func LeftOf(p, orig, dest Point) bool {
	return Orientation(p, orig, dest) > 0
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
