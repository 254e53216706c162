package period

import "sort"

// movingMedian returns the moving median of x with an odd window size.
// Positions where the window extends past either end treat the missing
// values as zero, so the output has the same length as the input.
func movingMedian(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	half := window / 2
	scratch := make([]float64, window)

	for i := range x {
		for k := 0; k < window; k++ {
			j := i - half + k
			if j < 0 || j >= len(x) {
				scratch[k] = 0
				continue
			}

			scratch[k] = x[j]
		}

		sort.Float64s(scratch)
		out[i] = scratch[half]
	}

	return out
}
