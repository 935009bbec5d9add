package sampler

import (
	"math"

	"github.com/katalvlaran/quadedge/point"
)

// Sample generates points in [0,length) x [0,width) such that no two
// points are closer than r, using Bridson's fast Poisson-disk sampling:
// an active-list algorithm backed by a background grid so that each
// acceptance test costs O(1) expected time rather than O(n).
//
// Complexity: expected O(n) in the number of points returned.
func Sample(r, length, width float64, opts ...Option) ([]point.Point, error) {
	if r <= 0 {
		return nil, ErrInvalidRadius
	}
	if length <= 0 || width <= 0 {
		return nil, ErrInvalidBounds
	}
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	grid := newBackground(r, 0, 0, length, width)

	first := point.Point{X: cfg.rng.Float64() * length, Y: cfg.rng.Float64() * width}
	result := []point.Point{first}
	grid.set(first, 0)
	active := []int{0}

	resultOf := func(idx int) point.Point { return result[idx] }

	for len(active) > 0 {
		pick := cfg.rng.Intn(len(active))
		originIdx := active[pick]
		origin := result[originIdx]

		// origin is retired after this pass regardless of outcome: each
		// active point gets exactly one batch of resampleLimit tries.
		active = removeAt(active, pick)
		for i := 0; i < cfg.resampleLimit; i++ {
			cand := randomPointAround(origin, r, cfg.rng)
			if !inBounds(cand, length, width) {
				continue
			}
			if grid.hasNeighborWithin(cand, r, resultOf) {
				continue
			}
			idx := len(result)
			result = append(result, cand)
			grid.set(cand, idx)
			active = append(active, idx)
		}
	}
	return result, nil
}

func randomPointAround(p point.Point, r float64, rng interface {
	Float64() float64
}) point.Point {
	radius := (rng.Float64() + 1) * r
	angle := rng.Float64() * 2 * math.Pi
	return point.Point{
		X: p.X + radius*math.Cos(angle),
		Y: p.Y + radius*math.Sin(angle),
	}
}

func inBounds(p point.Point, length, width float64) bool {
	return p.X >= 0 && p.X < length && p.Y >= 0 && p.Y < width
}

func removeAt(s []int, i int) []int {
	last := len(s) - 1
	s[i] = s[last]
	return s[:last]
}
