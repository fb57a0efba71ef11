package audio

import "math"

const maxDelayTime = 3.0

// FeedbackDelay is a delay line with a variable, interpolated delay time
// whose output is fed back into its input.
type FeedbackDelay struct {
	Params Params
	buf    []float64
	i      int
}

func (d *FeedbackDelay) InitAudio(p Params) {
	d.Params = p
	d.buf = make([]float64, int(maxDelayTime*p.SampleRate)+2)
	d.i = 0
}

// Delay writes x plus feedback times the delayed signal, and returns the
// delayed signal.
func (d *FeedbackDelay) Delay(x, delayTime, feedback float64) float64 {
	n := len(d.buf)
	samples := math.Max(1, math.Min(delayTime*d.Params.SampleRate, float64(n-2)))
	pos := float64(d.i) - samples
	for pos < 0 {
		pos += float64(n)
	}
	j := int(pos)
	frac := pos - float64(j)
	y := d.buf[j%n]*(1-frac) + d.buf[(j+1)%n]*frac
	d.buf[d.i] = x + feedback*y
	d.i = (d.i + 1) % n
	return y
}
