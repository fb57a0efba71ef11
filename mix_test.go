package persona

import (
	"math"
	"testing"
)

func TestMix_sumsToOne(t *testing.T) {
	stages := DefaultStages()
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		if sum := sum(Mix(stages, v, 0)); math.Abs(sum-1) > 1e-9 {
			t.Errorf("t=%.3f: sum %v", v, sum)
		}
	}
}

func TestMix_reference(t *testing.T) {
	stages := DefaultStages()
	for _, test := range []struct {
		t        float64
		weights  []float64
		dominant int
	}{
		{0, []float64{1, 0, 0, 0}, 0},
		{1, []float64{0, 0, 0, 1}, 3},
		{0.5, []float64{0, 0.5, 0.5, 0}, 1},
		{1.0 / 3, []float64{0, 1, 0, 0}, 1},
		{-3, []float64{1, 0, 0, 0}, 0},
		{7, []float64{0, 0, 0, 1}, 3},
		{math.NaN(), []float64{1, 0, 0, 0}, 0},
	} {
		w := Mix(stages, test.t, 0)
		if !near(w, test.weights, 1e-12) {
			t.Errorf("t=%v: expected %v, got %v", test.t, test.weights, w)
		}
		if d := Dominant(w); d != test.dominant {
			t.Errorf("t=%v: expected dominant %d, got %d", test.t, test.dominant, d)
		}
	}
}

func TestMix_support(t *testing.T) {
	stages := DefaultStages()
	width := 1.0 / 3
	for i := 0; i <= 300; i++ {
		v := float64(i) / 300
		w := Mix(stages, v, 0)
		for j, x := range w {
			if math.Abs(v-stages.At(j).Position) >= width && x > 1e-9 {
				t.Errorf("t=%.3f: stage %d outside its kernel has weight %v", v, j, x)
			}
		}
	}
}

func TestMix_couplingIsNotRenormalized(t *testing.T) {
	w := Mix(DefaultStages(), 0, 1)
	if expect := []float64{0, 0.5, 0, 0}; !near(w, expect, 1e-12) {
		t.Fatalf("expected %v, got %v", expect, w)
	}
	if s := sum(w); s != 0.5 {
		t.Errorf("expected sum 0.5, got %v", s)
	}

	w = Mix(DefaultStages(), 0.5, 0.5)
	if expect := []float64{0.25, 0.375, 0.375, 0.25}; !near(w, expect, 1e-12) {
		t.Errorf("expected %v, got %v", expect, w)
	}
}

func TestDominant_tie(t *testing.T) {
	for _, test := range []struct {
		w []float64
		d int
	}{
		{[]float64{0.5, 0.5}, 0},
		{[]float64{0.1, 0.4, 0.4, 0.1}, 1},
		{[]float64{0, 0, 0, 0}, 0},
		{[]float64{0, 0, 0.2, 0.3}, 3},
		{[]float64{0, 0.4999999999999999, 0.5000000000000001, 0}, 1},
	} {
		if d := Dominant(test.w); d != test.d {
			t.Errorf("%v: expected %d, got %d", test.w, test.d, d)
		}
	}
}

func sum(x []float64) float64 {
	s := 0.0
	for _, x := range x {
		s += x
	}
	return s
}

func near(x, y []float64, eps float64) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if math.Abs(x[i]-y[i]) > eps {
			return false
		}
	}
	return true
}

func BenchmarkMix(b *testing.B) {
	stages := DefaultStages()
	for i := 0; i < b.N; i++ {
		Mix(stages, float64(i%100)/100, 0.3)
	}
}
