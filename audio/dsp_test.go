package audio

import (
	"math"
	"testing"

	"github.com/gordonklaus/persona"
)

func TestWavetableOsc(t *testing.T) {
	const sampleRate, size = 1024, 256
	var o WavetableOsc
	Init(&o, Params{SampleRate: sampleRate})
	if o.Next(1) != 0 {
		t.Fatal("oscillator without a table is not silent")
	}

	table := make([]float64, size)
	for i := range table {
		table[i] = math.Sin(2 * math.Pi * float64(i) / size)
	}
	o.SetTable(table)
	for freq, eps := range map[float64]float64{
		4:   1e-3,
		16:  1e-3,
		100: 1e-2,
	} {
		o.phase = 0
		for i := 0; i < sampleRate; i++ {
			expect := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
			if y := o.Next(freq); math.Abs(y-expect) > eps {
				t.Fatalf("freq %v, sample %d: expected %v, got %v", freq, i, expect, y)
			}
		}
	}

	o.phase = 0.5
	o.Next(-sampleRate * 3 / 4)
	if o.phase < 0 || o.phase >= 1 {
		t.Errorf("phase %v left [0,1)", o.phase)
	}
}

func TestLowpass(t *testing.T) {
	p := Params{SampleRate: 48000}
	gain := func(cutoff, q, freq float64) float64 {
		var f Lowpass
		Init(&f, p)
		f.SetParams(cutoff, q)
		peak := 0.0
		for i := 0; i < 48000; i++ {
			y := f.Filter(math.Sin(2 * math.Pi * freq * float64(i) / p.SampleRate))
			if i > 24000 {
				peak = math.Max(peak, math.Abs(y))
			}
		}
		return peak
	}
	if g := gain(1000, 0, 100); math.Abs(g-1) > 0.05 {
		t.Errorf("passband gain %v", g)
	}
	if g := gain(1000, 0, 8000); g > 0.05 {
		t.Errorf("stopband gain %v", g)
	}
	if g := gain(1000, 12, 1000); g < 3 {
		t.Errorf("expected a resonant peak near 4, got %v", g)
	}
	if g := gain(1e6, 0, 100); math.IsNaN(g) || g > 1.1 {
		t.Errorf("cutoff above nyquist: gain %v", g)
	}
}

func TestFeedbackDelay(t *testing.T) {
	var d FeedbackDelay
	Init(&d, Params{SampleRate: 100})
	if n := len(d.buf); n < 300 {
		t.Fatalf("buffer of %d samples is shorter than 3 s", n)
	}
	var out []float64
	for i := 0; i < 40; i++ {
		x := 0.0
		if i == 0 {
			x = 1
		}
		out = append(out, d.Delay(x, 0.1, 0.5))
	}
	for i, y := range out {
		expect := 0.0
		switch i {
		case 10:
			expect = 1
		case 20:
			expect = 0.5
		case 30:
			expect = 0.25
		}
		if math.Abs(y-expect) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, expect, y)
		}
	}
}

func TestShaper(t *testing.T) {
	c := DistortionCurve(shaperAmount, shaperPoints)
	if len(c) != shaperPoints {
		t.Fatalf("expected %d points, got %d", shaperPoints, len(c))
	}
	for i := 1; i < len(c); i++ {
		if c[i] < c[i-1] {
			t.Fatalf("curve decreases at %d", i)
		}
	}
	s := NewShaper(shaperAmount)
	for _, x := range []float64{-10, -1, math.NaN(), math.Inf(-1)} {
		if y := s.Shape(x); y != c[0] {
			t.Errorf("Shape(%v): expected %v, got %v", x, c[0], y)
		}
	}
	for _, x := range []float64{1, 10, math.Inf(1)} {
		if y := s.Shape(x); y != c[len(c)-1] {
			t.Errorf("Shape(%v): expected %v, got %v", x, c[len(c)-1], y)
		}
	}
	// The curve spans x in [-1, 1.5), so silence lands a quarter of the way
	// up its positive half.
	x := 0.25
	if y, expect := s.Shape(0), 45*x*30*math.Pi/180/(math.Pi+40*x); math.Abs(y-expect) > 1e-3 {
		t.Errorf("Shape(0): expected %v, got %v", expect, y)
	}
}

func TestAmpMeter(t *testing.T) {
	m := NewAmpMeter(0.1)
	Init(m, Params{SampleRate: 1000})
	x := make([]float32, 100)
	for i := range x {
		x[i] = 0.5
	}
	if a := m.Amplitude(x); math.Abs(a-0.5) > 1e-6 {
		t.Errorf("expected 0.5, got %v", a)
	}
}

func BenchmarkWavetableOsc(b *testing.B) {
	tb, _ := persona.NewTableBuilder(persona.DefaultTableSize)
	var o WavetableOsc
	Init(&o, Params{SampleRate: 96000})
	o.SetTable(tb.Build(persona.Spectrum(0.5, persona.AudioOffset, 16)))
	for i := 0; i < b.N; i++ {
		o.Next(1234)
	}
}
