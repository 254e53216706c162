package periodogram

import (
	"errors"
	"fmt"
)

// Errors returned by the spectral estimators.
var (
	ErrEmptyPeriodogram = errors.New("periodogram: no trial periods evaluated")
	ErrTooFewSamples    = errors.New("periodogram: too few clean samples")
	ErrInvalidGrid      = errors.New("periodogram: invalid period grid")
	ErrUnevenSampling   = errors.New("periodogram: curve is not evenly sampled")
)

// Periodogram holds power evaluated over a grid of trial periods. Periods
// and Power are parallel; higher power marks a better-supported period.
type Periodogram struct {
	Periods []float64
	Power   []float64
}

// Len returns the number of evaluated trial periods.
func (p *Periodogram) Len() int { return len(p.Periods) }

// PeriodAtMaxPower returns the trial period with the highest power.
func (p *Periodogram) PeriodAtMaxPower() (float64, error) {
	if p.Len() == 0 {
		return 0, ErrEmptyPeriodogram
	}

	best := 0
	for i := 1; i < len(p.Power); i++ {
		if p.Power[i] > p.Power[best] {
			best = i
		}
	}

	period := p.Periods[best]
	if period <= 0 {
		return 0, fmt.Errorf("%w: peak at non-positive period %g", ErrInvalidGrid, period)
	}

	return period, nil
}
