package audio

import "math"

// AmpMeter tracks the RMS amplitude over a sliding window.
type AmpMeter struct {
	windowSize float64
	buf        Audio
	i          int
	sum        float64
}

func NewAmpMeter(windowSize float64) *AmpMeter {
	return &AmpMeter{windowSize: windowSize}
}

func (a *AmpMeter) InitAudio(p Params) {
	a.buf = make(Audio, int(math.Max(1, p.SampleRate*a.windowSize)))
	a.i, a.sum = 0, 0
}

func (a *AmpMeter) Amplitude(x []float32) float64 {
	for _, x := range x {
		a.sum -= a.buf[a.i]
		a.buf[a.i] = float64(x) * float64(x)
		a.sum += a.buf[a.i]
		a.i = (a.i + 1) % len(a.buf)
	}
	return math.Sqrt(math.Max(0, a.sum) / float64(len(a.buf)))
}
