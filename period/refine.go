package period

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

// Refine improves an initial period guess by a bounded local search.
//
// The starting bracket spans BracketLow*initial to BracketHigh*initial,
// clamped to [MinPeriod, MaxPeriod]. Each iteration scores the bracket
// midpoint against the midpoints of its lower and upper halves; if the
// current midpoint scores lowest the search has converged on it, otherwise
// the bracket shrinks toward the better-scoring side. The loop stops once
// the bracket is narrower than Tolerance.
//
// Refine returns the refined period together with its residual score, so
// callers feeding the result into CorrectHarmonic do not re-score it.
//
// This is a local minimizer: it assumes the score is roughly unimodal near
// the initial guess and can settle on a local minimum of a multimodal score
// surface. MaxIterations bounds the loop; exceeding it returns
// ErrNoConvergence with the bracket state.
func Refine(lc *lightcurve.LightCurve, initial float64, cfg Config) (float64, float64, error) {
	cfg = normalizeConfig(cfg)
	if err := cfg.validate(); err != nil {
		return 0, 0, err
	}

	if initial <= 0 || math.IsNaN(initial) || math.IsInf(initial, 0) {
		return 0, 0, fmt.Errorf("%w: initial guess %g", ErrNonPositivePeriod, initial)
	}

	mid := initial
	mini := math.Max(cfg.BracketLow*initial, cfg.MinPeriod)
	maxi := math.Min(cfg.BracketHigh*initial, cfg.MaxPeriod)

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		if maxi-mini < cfg.Tolerance {
			score, err := ResidualStdDev(lc, mid, cfg.SmoothWindow)
			if err != nil {
				return 0, 0, err
			}

			return mid, score, nil
		}

		lowScore, err := ResidualStdDev(lc, (mini+mid)/2, cfg.SmoothWindow)
		if err != nil {
			return 0, 0, err
		}

		midScore, err := ResidualStdDev(lc, mid, cfg.SmoothWindow)
		if err != nil {
			return 0, 0, err
		}

		highScore, err := ResidualStdDev(lc, (maxi+mid)/2, cfg.SmoothWindow)
		if err != nil {
			return 0, 0, err
		}

		if midScore <= lowScore && midScore <= highScore {
			return mid, midScore, nil
		}

		if lowScore < highScore {
			maxi = mid
			mid = (mini + mid) / 2
		} else {
			mini = mid
			mid = (mid + maxi) / 2
		}
	}

	return 0, 0, fmt.Errorf("%w: bracket [%g, %g] around %g after %d iterations",
		ErrNoConvergence, mini, maxi, mid, cfg.MaxIterations)
}
