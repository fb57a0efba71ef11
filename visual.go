package persona

import "math"

const (
	visualTimeScale   = 1.5
	visualJitterScale = 0.5
)

// A Sampler re-evaluates the spectral model for drawing.  It shares no state
// with the Synth beyond the VisualFrame it is handed.
type Sampler struct {
	Stages StageTable
	Rand   Rand
}

func NewSampler(stages StageTable, r Rand) *Sampler {
	return &Sampler{Stages: stages, Rand: r}
}

// Sample returns one soft-saturated waveform sample at phase theta and time t,
// using at most maxPartial partials per stage.  Each partial's phase is
// jittered by up to +-entropy/4, redrawn on every call.
//
// The partial accumulator is shared by all stages: each stage adds the
// running total, not just its own partials, scaled by its weight.  Later
// stages therefore stack on top of earlier ones.  This is how the picture has
// always been drawn, so it is kept.
func (s *Sampler) Sample(f *VisualFrame, theta, t float64, maxPartial int, entropy float64) float64 {
	pos := Morph(f.WavetablePos, VisualOffset)
	sample, acc := 0.0, 0.0
	for i := 0; i < s.Stages.Len() && i < len(f.Weights); i++ {
		w := f.Weights[i]
		if !(w > 0) {
			continue
		}
		partials := s.Stages.At(i).Partials
		if maxPartial < partials {
			partials = maxPartial
		}
		for n := 1; n <= partials; n++ {
			amp := Amplitude(pos, n, partials)
			jitter := centered(s.Rand) * entropy * visualJitterScale
			fn := float64(n)
			acc += math.Sin(theta*fn+t*fn*visualTimeScale+jitter) * amp
		}
		sample += w * acc
	}
	return math.Tanh(sample)
}
