package persona

import "math"

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func clamp01(x float64) float64 { return clamp(x, 0, 1) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func finiteOr(x, def float64) float64 {
	if !finite(x) {
		return def
	}
	return x
}
