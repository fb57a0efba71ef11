package persona

import (
	"math"
	"math/rand"
	"testing"
)

// still draws 0.5 forever, so no phase is jittered.
func still() *seqRand { return &seqRand{vals: []float64{0.5}} }

func TestSampler_sharedAccumulator(t *testing.T) {
	stages := DefaultStages()
	s := NewSampler(stages, still())
	f := &VisualFrame{Weights: []float64{0, 0.5, 0.5, 0}, WavetablePos: 0.7}
	theta, tm := 1.1, 0.4

	pos := Morph(f.WavetablePos, VisualOffset)
	partial := func(i int) float64 {
		sum := 0.0
		p := stages.At(i).Partials
		for n := 1; n <= p; n++ {
			fn := float64(n)
			sum += math.Sin(theta*fn+tm*fn*1.5) * Amplitude(pos, n, p)
		}
		return sum
	}
	a1, a2 := partial(1), partial(2)
	expect := math.Tanh(0.5*a1 + 0.5*(a1+a2))

	if v := s.Sample(f, theta, tm, 16, 0); math.Abs(v-expect) > 1e-12 {
		t.Errorf("expected %v, got %v", expect, v)
	}
}

func TestSampler_maxPartial(t *testing.T) {
	stages := DefaultStages()
	s := NewSampler(stages, still())
	f := &VisualFrame{Weights: []float64{0, 0, 0, 1}, WavetablePos: 1}
	pos := Morph(1, VisualOffset)
	expect := math.Tanh(math.Sin(0.3) * Amplitude(pos, 1, 1))
	if v := s.Sample(f, 0.3, 0, 1, 0); math.Abs(v-expect) > 1e-12 {
		t.Errorf("expected %v, got %v", expect, v)
	}
}

func TestSampler_bounded(t *testing.T) {
	s := NewSampler(DefaultStages(), rand.New(rand.NewSource(1)))
	syn := New(nil, WithRand(rand.New(rand.NewSource(2))))
	for _, value := range []float64{0, 0.3, 0.5, 0.9, 1} {
		syn.SetValue(value)
		syn.SetWavetablePos(value)
		f := syn.VisualFrame()
		for theta := 0.0; theta < 2*math.Pi; theta += 0.1 {
			v := s.Sample(&f, theta, theta, 16, 1)
			if !(v > -1 && v < 1) {
				t.Fatalf("value %v theta=%v: sample %v", value, theta, v)
			}
		}
	}
}

func TestSampler_jitterBounds(t *testing.T) {
	stages := DefaultStages()
	f := &VisualFrame{Weights: []float64{1, 0, 0, 0}}
	const e = 0.8
	base := NewSampler(stages, still()).Sample(f, 0.2, 0, 1, e)
	for _, r := range []float64{0, math.Nextafter(1, 0)} {
		v := NewSampler(stages, &seqRand{vals: []float64{r}}).Sample(f, 0.2, 0, 1, e)
		// One partial of amplitude 1: the sample is tanh(sin(0.2+jitter)).
		jitter := math.Asin(math.Atanh(v)) - 0.2
		if math.Abs(jitter) > e/4+1e-9 || v == base {
			t.Errorf("draw %v: phase jitter %v (bound %v)", r, jitter, e/4)
		}
	}
}

func TestSampler_ignoresMissingWeights(t *testing.T) {
	s := NewSampler(DefaultStages(), still())
	if v := s.Sample(&VisualFrame{}, 1, 1, 16, 0); v != 0 {
		t.Errorf("expected silence, got %v", v)
	}
	if v := s.Sample(&VisualFrame{Weights: []float64{math.NaN(), -1}}, 1, 1, 16, 0); v != 0 {
		t.Errorf("expected silence, got %v", v)
	}
}

func BenchmarkSampler(b *testing.B) {
	s := NewSampler(DefaultStages(), rand.New(rand.NewSource(1)))
	f := &VisualFrame{Weights: []float64{0, 0.5, 0.5, 0}, WavetablePos: 0.5}
	for i := 0; i < b.N; i++ {
		s.Sample(f, float64(i), 0, 16, 0.5)
	}
}
