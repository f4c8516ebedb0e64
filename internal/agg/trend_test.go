package agg

import "testing"

func TestMovingAverage(t *testing.T) {
	out := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	if len(out) != len(want) {
		t.Fatalf("length: %v", out)
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("at %d: want %v, got %v", i, want[i], out[i])
		}
	}
	if out := MovingAverage(nil, 3); len(out) != 0 {
		t.Fatalf("empty series: %v", out)
	}
}

func TestGrowthRate(t *testing.T) {
	if g := GrowthRate(150, 100); g == nil || *g != 50 {
		t.Fatalf("growth: %v", g)
	}
	if g := GrowthRate(50, 100); g == nil || *g != -50 {
		t.Fatalf("negative growth: %v", g)
	}
	if g := GrowthRate(10, 0); g != nil {
		t.Fatalf("zero previous has no defined growth, want nil, got %v", *g)
	}
}
