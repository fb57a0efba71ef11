package persona

import "math"

const (
	MorphCurve     = 1.2
	MorphIntensity = 2.6

	// AudioOffset and VisualOffset centre the morph remap for the oscillator
	// spectra and for the drawn waveform respectively.  They differ, so the
	// picture is brighter than the sound at the same wavetable setting.
	AudioOffset  = 0.1
	VisualOffset = 0.5

	brightBoost = 3
)

// Morph maps the raw wavetable control to a blend position in [0,1].
func Morph(raw, offset float64) float64 {
	p := math.Pow(clamp01(finiteOr(raw, 0)), MorphCurve)
	return clamp01(offset + (p-0.5)*MorphIntensity)
}

func sineAmp(n int) float64 {
	if n == 1 {
		return 1
	}
	return 0
}

func triangleAmp(n int) float64 {
	if n%2 == 0 {
		return 0
	}
	sign := -1.0
	if n%4 == 1 {
		sign = 1
	}
	return sign / float64(n*n)
}

func sawAmp(n int) float64 { return 1 / float64(n) }

// brightAmp is a saw spectrum with a linear boost toward partial p.
func brightAmp(n, p int) float64 {
	return 1 / float64(n) * (1 + brightBoost*float64(n)/float64(p))
}

// Amplitude returns the sine coefficient of partial n (1-based) at blend
// position pos, blending sine, triangle, saw and bright over three equal segments.
// p is the total partial count the bright template is normalized by.
func Amplitude(pos float64, n, p int) float64 {
	switch {
	case pos < 1.0/3:
		t := pos / (1.0 / 3)
		return sineAmp(n)*(1-t) + triangleAmp(n)*t
	case pos < 2.0/3:
		t := (pos - 1.0/3) / (1.0 / 3)
		return triangleAmp(n)*(1-t) + sawAmp(n)*t
	default:
		t := (pos - 2.0/3) / (1.0 / 3)
		return sawAmp(n)*(1-t) + brightAmp(n, p)*t
	}
}

// Spectrum returns the sine coefficients for partials 0..partials of the
// waveform at the raw wavetable position.  Index 0 (DC) is always zero, and
// there are no cosine terms.
func Spectrum(raw, offset float64, partials int) []float64 {
	pos := Morph(raw, offset)
	imag := make([]float64, partials+1)
	for n := 1; n <= partials; n++ {
		imag[n] = Amplitude(pos, n, partials)
	}
	return imag
}
