package prep_test

import (
	"testing"

	"github.com/katalvlaran/quadedge/point"
	"github.com/katalvlaran/quadedge/prep"
)

func TestPrepare_DedupAndSort(t *testing.T) {
	in := []point.Point{
		{X: 2, Y: 1},
		{X: 1, Y: 5},
		{X: 1, Y: 2},
		{X: 1, Y: 2}, // duplicate
		{X: 0, Y: 0},
	}
	out := prep.Prepare(in)

	want := []point.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 2},
		{X: 1, Y: 5},
		{X: 2, Y: 1},
	}
	if len(out) != len(want) {
		t.Fatalf("expected %d points, got %d: %v", len(want), len(out), out)
	}
	for i := range want {
		if !point.Equal(out[i], want[i]) {
			t.Fatalf("at %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestPrepare_DoesNotMutateInput(t *testing.T) {
	in := []point.Point{{X: 3, Y: 3}, {X: 1, Y: 1}}
	_ = prep.Prepare(in)
	if !point.Equal(in[0], point.Point{X: 3, Y: 3}) || !point.Equal(in[1], point.Point{X: 1, Y: 1}) {
		t.Fatalf("Prepare must not mutate its input, got %v", in)
	}
}

func TestPrepareOrError_InsufficientPoints(t *testing.T) {
	if _, err := prep.PrepareOrError(nil); err != prep.ErrInsufficientPoints {
		t.Fatalf("expected ErrInsufficientPoints for nil input, got %v", err)
	}
	if _, err := prep.PrepareOrError([]point.Point{{X: 1, Y: 1}, {X: 1, Y: 1}}); err != prep.ErrInsufficientPoints {
		t.Fatalf("expected ErrInsufficientPoints when duplicates collapse to one point, got %v", err)
	}
}

func TestPrepareOrError_OK(t *testing.T) {
	out, err := prep.PrepareOrError([]point.Point{{X: 1, Y: 1}, {X: 0, Y: 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 points, got %d", len(out))
	}
}
