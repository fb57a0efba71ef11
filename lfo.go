package persona

import "math"

const (
	lfoJumpPerSecond = 0.15
	lfoAmplitude     = 0.5
)

// An LFO wobbles a control around Base.  Its frequency random-walks within
// [MinFreq, MaxFreq] and occasionally jumps to a fresh random frequency.
type LFO struct {
	Base, Depth      float64
	Phase, Freq      float64
	MinFreq, MaxFreq float64
	Jitter           float64
}

// Step advances the LFO by dt seconds and returns the modulated value.  ok is
// false, and the LFO untouched, when it is inactive or dt is not positive.
func (l *LFO) Step(dt float64, r Rand) (v float64, ok bool) {
	if !(l.Depth > 0) || !(dt > 0) {
		return l.Base, false
	}
	freq := clamp(l.Freq+centered(r)*l.Jitter*dt, l.MinFreq, l.MaxFreq)
	if r.Float64() < lfoJumpPerSecond*dt {
		freq = l.MinFreq + r.Float64()*(l.MaxFreq-l.MinFreq)
	}
	l.Freq = freq
	l.Phase += 2 * math.Pi * l.Freq * dt
	return l.Base + math.Sin(l.Phase)*l.Depth*lfoAmplitude, true
}

// Controller is the part of the control surface the drift LFOs drive.
type Controller interface {
	SetValue(float64)
	SetDelay(float64)
	SetEntropy(float64)
	SetRefinement(float64)
}

// Drift holds the four slow LFOs of the persona, delay, entropy and
// refinement controls.
type Drift struct {
	Persona, Delay, Entropy, Refinement LFO
	rand                                Rand
}

func NewDrift(r Rand) *Drift {
	phase := func() float64 { return r.Float64() * 2 * math.Pi }
	return &Drift{
		Persona:    LFO{Depth: 0.25, Phase: phase(), Freq: 0.03, MinFreq: 0.005, MaxFreq: 0.20, Jitter: 0.8},
		Delay:      LFO{Depth: 0.2, Phase: phase(), Freq: 0.04, MinFreq: 0.008, MaxFreq: 0.25, Jitter: 1.0},
		Entropy:    LFO{Depth: 0.15, Phase: phase(), Freq: 0.05, MinFreq: 0.01, MaxFreq: 0.30, Jitter: 1.2},
		Refinement: LFO{Base: defaultRefinement, Depth: 0.15, Phase: phase(), Freq: 0.02, MinFreq: 0.004, MaxFreq: 0.16, Jitter: 0.7},
		rand:       r,
	}
}

// Step advances every LFO by dt and applies the active ones.  Nothing
// happens for dt <= 0, which is what a stalled or resumed clock produces.
func (d *Drift) Step(dt float64, c Controller) {
	if !(dt > 0) {
		return
	}
	if v, ok := d.Persona.Step(dt, d.rand); ok {
		c.SetValue(clamp01(v))
	}
	if v, ok := d.Delay.Step(dt, d.rand); ok {
		c.SetDelay(clamp01(v))
	}
	if v, ok := d.Entropy.Step(dt, d.rand); ok {
		c.SetEntropy(clamp01(v))
	}
	if v, ok := d.Refinement.Step(dt, d.rand); ok {
		c.SetRefinement(clamp01(v))
	}
}
