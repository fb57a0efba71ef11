// Package render draws the persona waveform stack: a perspective grid, a
// stack of waveform lines sampled from the synth's VisualFrame, and an
// entropy-driven noise overlay.
package render

import (
	"image/color"
	"math"

	"github.com/gordonklaus/persona"
)

const (
	minLines, maxLines   = 3, 28
	minCycles, maxCycles = 2.0, 10.0
	samplesPerLine       = 400

	squishMinEntropy = 0.01
)

// Settings are the renderer's own controls.  They mirror, but never feed
// back into, the synth.
type Settings struct {
	Entropy    float64
	Refinement float64
	Energy     float64
}

func DefaultSettings() Settings {
	return Settings{Refinement: 0.5, Energy: 0.5}
}

func (s Settings) clamped() Settings {
	return Settings{clamp01(s.Entropy), clamp01(s.Refinement), clamp01(s.Energy)}
}

// Squish is a slow breathing of the stack with entropy, independent of the
// synth's turbulence.
func Squish(t, entropy float64) float64 {
	if !(entropy > squishMinEntropy) {
		return 0
	}
	s1 := 0.6 + entropy
	s2 := 0.3 + 0.7*entropy
	return 0.5 * (math.Sin(t*s1) + math.Sin(t*s2+1.7)) * entropy
}

// A Line is one waveform in the stack.
type Line struct {
	Depth      float64 // 0 at the top (far) line, 1 at the bottom
	YCenter    float64
	Amp        float64
	Alpha      float64
	MaxPartial int
	ShadowBlur float64
}

// A Stack is the layout of one frame's waveform lines.
type Stack struct {
	Lines     []Line
	Cycles    float64
	Squish    float64
	Color     HSL
	LineWidth float64
}

// Layout computes the stack for a wxh frame at time t.
func Layout(f *persona.VisualFrame, s Settings, maxPartials int, w, h, t float64) Stack {
	s = s.clamped()
	richness := clamp01(f.RichnessNorm)

	n := int(math.Round(minLines + richness*(maxLines-minLines)))
	n = int(math.Round(float64(n) * (0.5 + 0.8*s.Energy)))
	if n < minLines {
		n = minLines
	}
	if n > maxLines {
		n = maxLines
	}

	squish := Squish(t, s.Entropy)
	st := Stack{
		Lines:     make([]Line, n),
		Cycles:    (minCycles + richness*(maxCycles-minCycles)) * (1 + 0.5*squish),
		Squish:    squish,
		Color:     lineColor(StageColor(f.DominantID), s.Refinement),
		LineWidth: 2,
	}
	boost := 0.2 + 0.8*s.Refinement
	for i := range st.Lines {
		d := 0.0
		if n > 1 {
			d = float64(i) / float64(n-1)
		}
		st.Lines[i] = Line{
			Depth:      d,
			YCenter:    h*0.19 + d*h*0.55,
			Amp:        h * 0.10 * (0.3 + 0.9*d) * (1 - 0.35*squish),
			Alpha:      math.Min(1, (0.25+0.75*d)*boost),
			MaxPartial: 1 + int(math.Round((0.3+2.7*d)*float64(maxPartials-1))),
			ShadowBlur: (10 + 10*d) * boost,
		}
	}
	return st
}

// lineColor desaturates and darkens the stage colour as refinement drops.
func lineColor(base HSL, refinement float64) HSL {
	s0 := base.S * 0.7
	return HSL{
		H: math.Round(base.H*10) / 10,
		S: math.Round(math.Min(1, s0+(base.S-s0)*(0.4+0.6*refinement))*100) / 100,
		L: math.Round(math.Min(1, base.L*(0.7+0.3*refinement))*100) / 100,
	}
}

// A Point is a position in pixels.
type Point struct{ X, Y float32 }

// Polyline samples line i of the stack across width w, appending to dst.
func (st *Stack) Polyline(dst []Point, i int, sampler *persona.Sampler, f *persona.VisualFrame, entropy, w, t float64) []Point {
	l := st.Lines[i]
	for k := 0; k <= samplesPerLine; k++ {
		u := float64(k) / samplesPerLine
		theta := u*2*math.Pi*st.Cycles + t*2 + l.Depth*0.8
		y := l.YCenter + l.Amp*sampler.Sample(f, theta, t+l.Depth*0.4, l.MaxPartial, entropy)
		dst = append(dst, Point{float32(u * w), float32(y)})
	}
	return dst
}

// A Speck is one noise dot.
type Speck struct {
	X, Y, Size float64
}

// Noise scatters entropy specks over a wxh frame.  It returns nil at low
// entropy.
func Noise(dst []Speck, s Settings, r persona.Rand, w, h float64) ([]Speck, float64) {
	s = s.clamped()
	if !(s.Entropy > squishMinEntropy) {
		return dst[:0], 0
	}
	n := int(math.Floor(200 * s.Entropy * s.Entropy * (0.3 + 0.7*s.Energy)))
	dst = dst[:0]
	for i := 0; i < n; i++ {
		x := r.Float64() * w
		y := r.Float64() * h
		dst = append(dst, Speck{x, y, 0.7 + 1.8*r.Float64()})
	}
	return dst, 0.20 + 0.25*s.Entropy
}

var (
	bgTop    = color.NRGBA{A: 255}
	bgMid    = color.NRGBA{R: 0x00, G: 0x15, B: 0x28, A: 255}
	bgMidAt  = 0.4
	gridBase = color.NRGBA{R: 0, G: 120, B: 255}
)

// Background returns the gradient colour at fraction v down the frame.
func Background(v float64) color.NRGBA {
	if v < bgMidAt {
		return mixColor(bgTop, bgMid, v/bgMidAt)
	}
	return mixColor(bgMid, bgTop, (v-bgMidAt)/(1-bgMidAt))
}

func mixColor(a, b color.NRGBA, t float64) color.NRGBA {
	m := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.NRGBA{R: m(a.R, b.R), G: m(a.G, b.G), B: m(a.B, b.B), A: m(a.A, b.A)}
}

// A GridLine runs from the vanishing point to the bottom edge.
type GridLine struct {
	X0, Y0, X1, Y1 float64
}

// Grid returns the perspective grid with its colour and stroke width.
func Grid(s Settings, w, h float64) ([]GridLine, color.NRGBA, float64) {
	s = s.clamped()
	const n = 24
	lines := make([]GridLine, n+1)
	for i := range lines {
		lines[i] = GridLine{w * 0.5, h * 0.3, float64(i) / n * w, h}
	}
	c := gridBase
	c.A = byteOf(0.25 * (0.15 + 0.85*s.Energy))
	return lines, c, 1 + 5.05*s.Energy
}

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return math.Min(1, x)
}
