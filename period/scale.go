package period

import (
	"fmt"
	"math"
)

// Scale multiplies a period by a positive factor.
//
// Interactive callers use this for manual half/double/triple adjustments of
// a displayed period; it carries no coupling to the search itself.
func Scale(period, factor float64) (float64, error) {
	if period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return 0, fmt.Errorf("%w: %g", ErrNonPositivePeriod, period)
	}

	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidScaleFactor, factor)
	}

	return period * factor, nil
}
