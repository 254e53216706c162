package period

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

// CorrectHarmonic resolves the half/double-period ambiguity of a refined
// candidate.
//
// Fold-based scores are often nearly degenerate at integer multiples and
// divisors of the true period; eclipsing binaries in particular can make a
// half-period fold look as clean as the full period. CorrectHarmonic scores
// twice the candidate and, failing that, half the candidate, and returns
// whichever strictly improves on the candidate's own score. It is a
// targeted de-aliasing pass, not a general harmonic search: ratios other
// than 2 and 1/2 are not examined.
//
// score must be the candidate's own residual score, as returned by Refine.
// The corrected period is returned together with its score.
func CorrectHarmonic(lc *lightcurve.LightCurve, candidate, score float64, cfg Config) (float64, float64, error) {
	cfg = normalizeConfig(cfg)
	if err := cfg.validate(); err != nil {
		return 0, 0, err
	}

	if candidate <= 0 || math.IsNaN(candidate) || math.IsInf(candidate, 0) {
		return 0, 0, fmt.Errorf("%w: %g", ErrNonPositivePeriod, candidate)
	}

	doubled := 2 * candidate

	doubledScore, err := ResidualStdDev(lc, doubled, cfg.SmoothWindow)
	if err != nil {
		return 0, 0, err
	}

	if doubledScore < score {
		return doubled, doubledScore, nil
	}

	halved := candidate / 2

	halvedScore, err := ResidualStdDev(lc, halved, cfg.SmoothWindow)
	if err != nil {
		return 0, 0, err
	}

	if halvedScore < score {
		return halved, halvedScore, nil
	}

	return candidate, score, nil
}
