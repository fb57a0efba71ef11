package persona

import "math"

const (
	TurbulenceMinEntropy = 0.01

	stageJitterScale = 4
)

// Turbulence is a slow, bounded modulation built from two sinusoids whose
// phases are fixed at construction.  Shape is a pure function of the query
// time, so sound and picture can evaluate it independently.
type Turbulence struct {
	phase1, phase2 float64
}

func NewTurbulence(r Rand) Turbulence {
	return Turbulence{phase1: r.Float64() * 2 * math.Pi, phase2: r.Float64() * 2 * math.Pi}
}

// Shape returns the turbulence at time tau (seconds on the audio clock), in
// [-1, 1].  It is zero at or below TurbulenceMinEntropy.
func (tb Turbulence) Shape(tau, entropy float64) float64 {
	if !(entropy > TurbulenceMinEntropy) {
		return 0
	}
	s1 := 0.4 + 0.8*entropy
	s2 := 0.2 + 0.6*entropy
	return 0.5 * (math.Sin(tau*s1+tb.phase1) + math.Sin(tau*s2+tb.phase2+1.3))
}

// StageJitter is the detune in Hz shared by every voice of one stage.
func StageJitter(r Rand, entropy float64) float64 {
	return centered(r) * entropy * stageJitterScale
}

// VoiceJitter is the extra detune in Hz of a single voice.
func VoiceJitter(r Rand, entropy float64) float64 {
	return centered(r) * entropy
}
