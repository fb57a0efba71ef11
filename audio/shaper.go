package audio

import "math"

const (
	shaperAmount = 40
	shaperPoints = 44100
)

// A Shaper maps samples through a transfer curve, like a WaveShaperNode:
// inputs in [-1,1] span the curve and anything outside clips to its ends.
type Shaper struct {
	curve []float64
}

func NewShaper(amount float64) *Shaper {
	return &Shaper{curve: DistortionCurve(amount, shaperPoints)}
}

// DistortionCurve is the classic soft-knee curve
// ((5+k)*x*30deg)/(pi+k*|x|) sampled at n points, with x = 2.5i/n - 1.
func DistortionCurve(k float64, n int) []float64 {
	deg := math.Pi / 180
	c := make([]float64, n)
	for i := range c {
		x := float64(i)*2.5/float64(n) - 1
		c[i] = (5 + k) * x * 30 * deg / (math.Pi + k*math.Abs(x))
	}
	return c
}

func (s *Shaper) Shape(x float64) float64 {
	n := len(s.curve)
	v := (float64(n) - 1) / 2 * (x + 1)
	switch {
	case !(v > 0):
		return s.curve[0]
	case v >= float64(n-1):
		return s.curve[n-1]
	}
	i := int(v)
	frac := v - float64(i)
	return s.curve[i]*(1-frac) + s.curve[i+1]*frac
}
