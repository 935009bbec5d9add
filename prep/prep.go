package prep

import (
	"errors"
	"sort"

	"github.com/katalvlaran/quadedge/point"
)

// ErrInsufficientPoints indicates fewer than 2 distinct points remained
// after deduplication.
var ErrInsufficientPoints = errors.New("prep: fewer than 2 distinct points")

// Prepare returns a deduplicated, lexicographically sorted copy of
// points. The input slice is not mutated.
//
// Complexity: O(n log n).
func Prepare(points []point.Point) []point.Point {
	sorted := append([]point.Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		return point.Less(sorted[i], sorted[j])
	})

	out := sorted[:0:0]
	for i, p := range sorted {
		if i == 0 || !point.Equal(p, sorted[i-1]) {
			out = append(out, p)
		}
	}
	return out
}

// PrepareOrError is Prepare with the §4.4/§7 precondition made explicit:
// it returns ErrInsufficientPoints when the prepared set has fewer than
// 2 points, sparing delaunay.Triangulate from re-deriving that check.
//
// Complexity: O(n log n).
func PrepareOrError(points []point.Point) ([]point.Point, error) {
	prepared := Prepare(points)
	if len(prepared) < 2 {
		return nil, ErrInsufficientPoints
	}
	return prepared, nil
}
