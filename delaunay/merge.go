package delaunay

import (
	"github.com/katalvlaran/quadedge/point"
	"github.com/katalvlaran/quadedge/qedge"
)

// buildRecursive handles |P| > 3: split in half, recurse on each half,
// then merge along the lower common tangent.
func buildRecursive(sub *qedge.Subdivision, points []point.Point, cfg Options) (ldo, rdo qedge.QuadEdge) {
	mid := len(points) / 2
	ldoL, ldiL := build(sub, points[:mid], cfg)
	rdiR, rdoR := build(sub, points[mid:], cfg)

	ldi, rdi := ldiL, rdiR
	ldo, rdo = ldoL, rdoR

	// Lower common tangent: walk until neither side needs to advance.
	for {
		switch {
		case point.LeftOf(rdi.Orig(), ldi.Orig(), ldi.Dest()):
			ldi = ldi.LeftNext()
		case point.RightOf(ldi.Orig(), rdi.Orig(), rdi.Dest()):
			rdi = rdi.RightPrev()
		default:
			goto tangentFound
		}
	}
tangentFound:

	// First cross edge, bridging the two sub-hulls.
	basel := qedge.Connect(rdi.Sym(), ldi)
	if point.Equal(ldi.Orig(), ldo.Orig()) {
		ldo = basel.Sym()
	}
	if point.Equal(rdi.Orig(), rdo.Orig()) {
		rdo = basel
	}

	// Merge loop: repeatedly find and add the next cross edge satisfying
	// the empty-circumcircle property against both halves.
	for {
		lcand := basel.Sym().OrigNext()
		rcand := basel.OrigPrev()

		validL := point.RightOf(lcand.Dest(), basel.Orig(), basel.Dest())
		validR := point.RightOf(rcand.Dest(), basel.Orig(), basel.Dest())
		if !validL && !validR {
			break
		}

		if validL {
			for point.InCircle(basel.Dest(), basel.Orig(), lcand.Dest(), lcand.OrigNext().Dest()) > 0 {
				t := lcand.OrigNext()
				qedge.Disconnect(lcand)
				lcand = t
				if !point.RightOf(lcand.Dest(), basel.Orig(), basel.Dest()) {
					break
				}
			}
		}
		if validR {
			for point.InCircle(basel.Dest(), basel.Orig(), rcand.Dest(), rcand.OrigPrev().Dest()) > 0 {
				t := rcand.OrigPrev()
				qedge.Disconnect(rcand)
				rcand = t
				if !point.RightOf(rcand.Dest(), basel.Orig(), basel.Dest()) {
					break
				}
			}
		}

		validL = point.RightOf(lcand.Dest(), basel.Orig(), basel.Dest())
		validR = point.RightOf(rcand.Dest(), basel.Orig(), basel.Dest())

		// Pick whichever candidate's circumcircle does NOT contain the
		// other's far point: that is the one preserving the
		// empty-circumcircle property. When the left candidate is
		// exhausted the choice is forced to the right, and vice versa.
		useRight := !validL || (validR && point.InCircle(lcand.Dest(), lcand.Orig(), rcand.Orig(), rcand.Dest()) > 0)
		if useRight {
			basel = qedge.Connect(rcand, basel.Sym())
		} else {
			basel = qedge.Connect(basel.Sym(), lcand.Sym())
		}
	}

	return ldo, rdo
}
