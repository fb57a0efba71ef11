package persona

import "math"

// Mix maps the persona control t and a coupling factor to per-stage weights.
//
// Each stage contributes a triangular kernel one stage spacing wide; the
// kernels are normalized to sum to 1.  Coupling then pulls every weight
// toward the mean of its neighbours.  The coupled weights are not
// renormalized, so their sum drifts from 1 as coupling grows.
func Mix(stages StageTable, t, coupling float64) []float64 {
	t = clamp01(finiteOr(t, 0))
	coupling = clamp01(finiteOr(coupling, 0))

	n := stages.Len()
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	width := 1 / float64(n-1)
	sum := 0.0
	for i := range w {
		w[i] = math.Max(1-math.Abs(t-stages.At(i).Position)/width, 0)
		sum += w[i]
	}
	if sum == 0 {
		sum = 1
	}
	for i := range w {
		w[i] /= sum
	}

	if coupling > 0 {
		c := make([]float64, n)
		for i := range w {
			neighbors, count := 0.0, 0
			if i > 0 {
				neighbors += w[i-1]
				count++
			}
			if i < n-1 {
				neighbors += w[i+1]
				count++
			}
			avg := w[i]
			if count > 0 {
				avg = neighbors / float64(count)
			}
			c[i] = (1-coupling)*w[i] + coupling*avg
		}
		w = c
	}
	return w
}

// tieEpsilon absorbs the rounding in Mix, so weights that are equal in
// exact arithmetic tie.
const tieEpsilon = 1e-12

// Dominant returns the index of the largest weight.  Ties go to the lower
// index.
func Dominant(weights []float64) int {
	max := 0
	for i := 1; i < len(weights); i++ {
		if weights[i] > weights[max]+tieEpsilon {
			max = i
		}
	}
	return max
}
