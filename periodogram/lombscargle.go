package periodogram

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

const defaultOversample = 5

// LombScargle is a generic oversampled periodogram for unevenly sampled
// curves.
//
// The frequency grid runs from 1/MaxPeriod to 1/MinPeriod with spacing
// 1/(Oversample * span), where span is the observation baseline. Power at
// each frequency follows the classic Lomb-Scargle normalization with the
// per-frequency time offset tau, which makes the estimate invariant to
// time-axis shifts.
type LombScargle struct {
	// MinPeriod is the shortest trial period (days). Zero selects twice the
	// mean cadence of the curve.
	MinPeriod float64

	// MaxPeriod is the longest trial period (days). Zero selects the
	// observation span.
	MaxPeriod float64

	// Oversample is the frequency oversampling factor. Zero selects 5.
	Oversample int
}

// Periodogram evaluates the Lomb-Scargle power over the trial grid.
func (ls LombScargle) Periodogram(lc *lightcurve.LightCurve) (*Periodogram, error) {
	clean := lc.Clean()

	n := clean.Len()
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, n)
	}

	t := clean.Time

	span := t[n-1] - t[0]
	if span <= 0 {
		return nil, fmt.Errorf("%w: non-positive observation span %g", ErrInvalidGrid, span)
	}

	minP := ls.MinPeriod
	if minP == 0 {
		minP = 2 * span / float64(n-1)
	}

	maxP := ls.MaxPeriod
	if maxP == 0 {
		maxP = span
	}

	if minP <= 0 || maxP <= minP {
		return nil, fmt.Errorf("%w: period range [%g, %g]", ErrInvalidGrid, minP, maxP)
	}

	oversample := ls.Oversample
	if oversample == 0 {
		oversample = defaultOversample
	}

	if oversample < 1 {
		return nil, fmt.Errorf("%w: oversample factor %d", ErrInvalidGrid, oversample)
	}

	// Mean-removed flux; Lomb-Scargle assumes a zero-centered signal.
	mean := vecmath.Sum(clean.Flux) / float64(n)

	y := make([]float64, n)
	for i, v := range clean.Flux {
		y[i] = v - mean
	}

	df := 1 / (float64(oversample) * span)
	fMin := 1 / maxP
	fMax := 1 / minP

	bins := int((fMax-fMin)/df) + 1

	pg := &Periodogram{
		Periods: make([]float64, 0, bins),
		Power:   make([]float64, 0, bins),
	}

	for f := fMin; f <= fMax; f += df {
		omega := 2 * math.Pi * f

		var s2, c2 float64
		for _, ti := range t {
			s, c := math.Sincos(2 * omega * ti)
			s2 += s
			c2 += c
		}

		tau := math.Atan2(s2, c2) / (2 * omega)

		var yc, ys, cc, ss float64
		for i, ti := range t {
			s, c := math.Sincos(omega * (ti - tau))
			yc += y[i] * c
			ys += y[i] * s
			cc += c * c
			ss += s * s
		}

		power := 0.0
		if cc > 0 {
			power += yc * yc / cc
		}

		if ss > 0 {
			power += ys * ys / ss
		}

		pg.Periods = append(pg.Periods, 1/f)
		pg.Power = append(pg.Power, 0.5*power)
	}

	if pg.Len() == 0 {
		return nil, ErrEmptyPeriodogram
	}

	return pg, nil
}

// EstimatePeriod returns the trial period with the highest power. It
// satisfies period.SpectralEstimator.
func (ls LombScargle) EstimatePeriod(lc *lightcurve.LightCurve) (float64, error) {
	pg, err := ls.Periodogram(lc)
	if err != nil {
		return 0, err
	}

	return pg.PeriodAtMaxPower()
}
