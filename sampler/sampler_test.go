package sampler_test

import (
	"testing"

	"github.com/katalvlaran/quadedge/point"
	"github.com/katalvlaran/quadedge/sampler"
)

func TestSample_InvalidRadius(t *testing.T) {
	if _, err := sampler.Sample(0, 10, 10); err != sampler.ErrInvalidRadius {
		t.Fatalf("expected ErrInvalidRadius, got %v", err)
	}
	if _, err := sampler.Sample(-1, 10, 10); err != sampler.ErrInvalidRadius {
		t.Fatalf("expected ErrInvalidRadius, got %v", err)
	}
}

func TestSample_InvalidBounds(t *testing.T) {
	if _, err := sampler.Sample(1, 0, 10); err != sampler.ErrInvalidBounds {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
	if _, err := sampler.Sample(1, 10, -5); err != sampler.ErrInvalidBounds {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestSample_RespectsBounds(t *testing.T) {
	const length, width = 20.0, 20.0
	pts, err := sampler.Sample(1.5, length, width, sampler.WithSeed(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) == 0 {
		t.Fatal("expected at least one point")
	}
	for _, p := range pts {
		if p.X < 0 || p.X >= length || p.Y < 0 || p.Y >= width {
			t.Fatalf("point %v out of bounds [0,%v)x[0,%v)", p, length, width)
		}
	}
}

func TestSample_MinimumDistance(t *testing.T) {
	const r = 2.0
	pts, err := sampler.Sample(r, 30, 30, sampler.WithSeed(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := point.Distance(pts[i], pts[j]); d < r {
				t.Fatalf("points %v and %v are %v apart, want >= %v", pts[i], pts[j], d, r)
			}
		}
	}
}

func TestSample_DeterministicWithSameSeed(t *testing.T) {
	a, err := sampler.Sample(1.0, 15, 15, sampler.WithSeed(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := sampler.Sample(1.0, 15, 15, sampler.WithSeed(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("expected identical run lengths, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if !point.Equal(a[i], b[i]) {
			t.Fatalf("at %d: expected %v, got %v", i, a[i], b[i])
		}
	}
}

func TestSample_WithResampleLimit(t *testing.T) {
	pts, err := sampler.Sample(3.0, 25, 25, sampler.WithSeed(3), sampler.WithResampleLimit(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) == 0 {
		t.Fatal("expected at least one point")
	}
}

func TestWithResampleLimit_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-positive resample limit")
		}
	}()
	sampler.WithResampleLimit(0)
}

func TestWithRand_PanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil rand")
		}
	}()
	sampler.WithRand(nil)
}
