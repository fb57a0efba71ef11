package persona

import "math"

const (
	minCutoff, maxCutoff    = 400.0, 8000.0
	cutoffFloor, cutoffCeil = 200.0, 12000.0
	minQ, maxQ              = 0.7, 8.0
	turbCutoffScale         = 0.35
	turbQScale              = 0.2

	minDelayTime   = 0.02
	delayTimeScale = 1.5
	maxFeedback    = 0.35

	minDrive, maxDrive = 1.0, 24.0

	detuneSpread = 0.05
)

// Cutoff maps refinement to a lowpass cutoff in Hz, wobbled by turbulence
// shape s once entropy is above the turbulence threshold.
func Cutoff(refinement, s, entropy float64) float64 {
	c := lerp(minCutoff, maxCutoff, refinement)
	if entropy > TurbulenceMinEntropy {
		c *= 1 + turbCutoffScale*s*entropy
	}
	return clamp(c, cutoffFloor, cutoffCeil)
}

// Resonance maps refinement to the lowpass Q.
func Resonance(refinement, s, entropy float64) float64 {
	q := maxQ
	if entropy > TurbulenceMinEntropy {
		q *= 1 + turbQScale*s*entropy
	}
	return lerp(minQ, q, refinement)
}

func DelayTime(amount float64) float64 {
	return minDelayTime + delayTimeScale*amount
}

// Feedback is shaped quadratically so low delay settings stay subtle.
func Feedback(amount float64) float64 {
	return lerp(0, maxFeedback, amount*amount)
}

func Drive(entropy float64) float64 {
	return lerp(minDrive, maxDrive, entropy)
}

func FundamentalFactor(richness float64) float64 {
	return 0.8 + 0.4*richness
}

// Richness is the weighted partial count of the mix, normalized so the
// sparsest stage is 0 and the richest is 1.
func Richness(stages StageTable, weights []float64) float64 {
	sum := 0.0
	for i := 0; i < stages.Len() && i < len(weights); i++ {
		sum += weights[i] * float64(stages.At(i).Partials)
	}
	min, max := float64(stages.MinPartials()), float64(stages.MaxPartials())
	if !finite(sum) {
		sum = min
	}
	return (sum - min) / math.Max(1, max-min)
}

// ChordRatio is the frequency ratio of a semitone offset.
func ChordRatio(semitones int) float64 {
	return math.Exp2(float64(semitones) / 12)
}

// VoiceFreq is the target frequency of one voice: the fundamental, spread
// by 5% per stage around the centre of the table, times the chord ratio,
// plus jitter in Hz.
func VoiceFreq(fundamental float64, stage, numStages, semitones int, jitter float64) float64 {
	center := float64(numStages-1) / 2
	spread := 1 + detuneSpread*(float64(stage)-center)
	return fundamental*spread*ChordRatio(semitones) + jitter
}
