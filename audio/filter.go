package audio

import "math"

// Lowpass is a resonant biquad lowpass.  Q is in dB, as in the Web Audio
// BiquadFilterNode the sound was designed against.
type Lowpass struct {
	Params             Params
	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     float64
}

func (f *Lowpass) InitAudio(p Params) {
	f.Params = p
	f.SetParams(350, 1)
}

func (f *Lowpass) SetParams(cutoff, q float64) {
	nyquist := f.Params.SampleRate / 2
	cutoff = math.Max(1, math.Min(cutoff, nyquist*0.999))
	w0 := 2 * math.Pi * cutoff / f.Params.SampleRate
	cos, sin := math.Cos(w0), math.Sin(w0)
	alpha := sin / (2 * math.Pow(10, q/20))
	a0 := 1 + alpha
	f.b0 = (1 - cos) / 2 / a0
	f.b1 = (1 - cos) / a0
	f.b2 = f.b0
	f.a1 = -2 * cos / a0
	f.a2 = (1 - alpha) / a0
}

func (f *Lowpass) Filter(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}
