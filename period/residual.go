package period

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

// ResidualStdDev scores how well a candidate period folds the curve.
//
// The clean (quality zero) subset of the curve is folded on the candidate
// period, the folded flux is smoothed with a moving median of the given
// window, and the score is
//
//	sqrt(sum((smoothed - raw)^2) / (N - 2))
//
// over the N folded samples. A period that aligns the repeating structure
// produces a smooth fold and a low score, so the value acts as a robust
// noise estimate of the fold quality. Lower is better.
//
// window must be odd and >= 3; when it exceeds the number of clean samples
// it is clamped to the largest odd value that fits, so short curves remain
// scorable. More than two clean samples are required for the N-2
// denominator.
//
// The input curve is never modified.
func ResidualStdDev(lc *lightcurve.LightCurve, candidate float64, window int) (float64, error) {
	if candidate <= 0 || math.IsNaN(candidate) || math.IsInf(candidate, 0) {
		return 0, fmt.Errorf("%w: %g", ErrNonPositivePeriod, candidate)
	}

	if window < 3 || window%2 == 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}

	clean := lc.Clean()

	n := clean.Len()
	if n <= 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInsufficientSamples, n)
	}

	if window > n {
		window = n
		if window%2 == 0 {
			window--
		}
	}

	folded, err := clean.Fold(candidate)
	if err != nil {
		return 0, err
	}

	smoothed := movingMedian(folded.Flux, window)

	residual := make([]float64, n)
	for i := range residual {
		residual[i] = smoothed[i] - folded.Flux[i]
	}

	ssq := vecmath.DotProduct(residual, residual)

	return math.Sqrt(ssq / float64(n-2)), nil
}
