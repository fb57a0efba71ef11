package persona

import (
	"math"
	"testing"
)

func TestTableBuilder_size(t *testing.T) {
	for _, size := range []int{0, 3, 100, 1000} {
		if _, err := NewTableBuilder(size); err == nil {
			t.Errorf("size %d: expected an error", size)
		}
	}
	b, err := NewTableBuilder(64)
	if err != nil {
		t.Fatal(err)
	}
	if b.Size() != 64 {
		t.Errorf("expected size 64, got %d", b.Size())
	}
}

func TestTableBuilder_sine(t *testing.T) {
	b, err := NewTableBuilder(256)
	if err != nil {
		t.Fatal(err)
	}
	table := b.Build(Spectrum(0, AudioOffset, 8))
	expect := additive([]float64{0, 1}, 256)
	if !sameUpToSign(table, expect, 1e-9) {
		t.Errorf("not a sine: %v", table[:8])
	}
}

func TestTableBuilder_additive(t *testing.T) {
	b, err := NewTableBuilder(DefaultTableSize)
	if err != nil {
		t.Fatal(err)
	}
	for _, raw := range []float64{0.2, 0.5, 0.8, 1} {
		for _, p := range []int{2, 4, 8, 16} {
			imag := Spectrum(raw, AudioOffset, p)
			table := b.Build(imag)
			if !sameUpToSign(table, additive(imag, DefaultTableSize), 1e-9) {
				t.Errorf("raw=%v P=%d: table differs from additive sum", raw, p)
			}
		}
	}
}

func TestTableBuilder_silence(t *testing.T) {
	b, _ := NewTableBuilder(64)
	for i, x := range b.Build(make([]float64, 5)) {
		if x != 0 {
			t.Fatalf("sample %d is %v", i, x)
		}
	}
}

// additive sums the sine series directly, normalized to a peak of 1.
func additive(imag []float64, size int) []float64 {
	out := make([]float64, size)
	peak := 0.0
	for k := range out {
		for n := 1; n < len(imag); n++ {
			out[k] += imag[n] * math.Sin(2*math.Pi*float64(n*k)/float64(size))
		}
		peak = math.Max(peak, math.Abs(out[k]))
	}
	for k := range out {
		out[k] /= peak
	}
	return out
}

func sameUpToSign(x, y []float64, eps float64) bool {
	same, flipped := true, true
	for i := range x {
		if math.Abs(x[i]-y[i]) > eps {
			same = false
		}
		if math.Abs(x[i]+y[i]) > eps {
			flipped = false
		}
	}
	return len(x) == len(y) && (same || flipped)
}

func BenchmarkTableBuilder(b *testing.B) {
	tb, _ := NewTableBuilder(DefaultTableSize)
	imag := Spectrum(0.7, AudioOffset, 16)
	for i := 0; i < b.N; i++ {
		tb.Build(imag)
	}
}
