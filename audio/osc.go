package audio

import "math"

// A WavetableOsc plays one period of a waveform at a variable frequency,
// interpolating linearly between table entries.
type WavetableOsc struct {
	Params Params
	table  []float64
	phase  float64
}

// SetTable swaps the waveform without resetting the phase.
func (o *WavetableOsc) SetTable(t []float64) { o.table = t }

func (o *WavetableOsc) Next(freq float64) float64 {
	n := len(o.table)
	if n == 0 {
		return 0
	}
	x := o.phase * float64(n)
	i := int(x)
	frac := x - float64(i)
	y := o.table[i%n]*(1-frac) + o.table[(i+1)%n]*frac
	_, o.phase = math.Modf(o.phase + freq/o.Params.SampleRate)
	if o.phase < 0 {
		o.phase++
	}
	return y
}

// Fill renders len(out) samples at a constant frequency.
func (o *WavetableOsc) Fill(out Audio, freq float64) Audio {
	for i := range out {
		out[i] = o.Next(freq)
	}
	return out
}
