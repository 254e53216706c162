package periodogram

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

// BoxLeastSquares defaults.
const (
	defaultBLSBins        = 200
	defaultBLSMinDuration = 0.01
	defaultBLSMaxDuration = 0.1
)

// BoxLeastSquares searches for periodic box-shaped dips, the signature of
// transits and eclipses.
//
// For each trial period the curve is folded into phase bins and a box of
// varying width is slid around the cycle; the signal residue
//
//	s^2 / (r * (1 - r))
//
// measures how much a constant in-box depression explains the data, where s
// is the summed mean-removed flux inside the box and r the fraction of
// samples it covers. The periodogram power at a trial period is the maximum
// residue over all box phases and widths.
type BoxLeastSquares struct {
	// MinPeriod is the shortest trial period (days). Zero selects twice the
	// mean cadence of the curve.
	MinPeriod float64

	// MaxPeriod is the longest trial period (days). Zero selects half the
	// observation span, so at least two transits fit the baseline.
	MaxPeriod float64

	// Bins is the number of phase bins per trial period. Zero selects 200.
	Bins int

	// MinDuration and MaxDuration bound the box width as a fraction of the
	// period. Zeros select 0.01 and 0.1.
	MinDuration float64
	MaxDuration float64

	// Oversample is the frequency oversampling factor. Zero selects 5.
	Oversample int
}

// Periodogram evaluates the box-least-squares residue over the trial grid.
func (bls BoxLeastSquares) Periodogram(lc *lightcurve.LightCurve) (*Periodogram, error) {
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

	minP := bls.MinPeriod
	if minP == 0 {
		minP = 2 * span / float64(n-1)
	}

	maxP := bls.MaxPeriod
	if maxP == 0 {
		maxP = span / 2
	}

	if minP <= 0 || maxP <= minP {
		return nil, fmt.Errorf("%w: period range [%g, %g]", ErrInvalidGrid, minP, maxP)
	}

	bins := bls.Bins
	if bins == 0 {
		bins = defaultBLSBins
	}

	if bins < 4 {
		return nil, fmt.Errorf("%w: %d phase bins", ErrInvalidGrid, bins)
	}

	minDur := bls.MinDuration
	if minDur == 0 {
		minDur = defaultBLSMinDuration
	}

	maxDur := bls.MaxDuration
	if maxDur == 0 {
		maxDur = defaultBLSMaxDuration
	}

	if minDur <= 0 || maxDur < minDur || maxDur >= 1 {
		return nil, fmt.Errorf("%w: duration range [%g, %g]", ErrInvalidGrid, minDur, maxDur)
	}

	oversample := bls.Oversample
	if oversample == 0 {
		oversample = defaultOversample
	}

	if oversample < 1 {
		return nil, fmt.Errorf("%w: oversample factor %d", ErrInvalidGrid, oversample)
	}

	mean := vecmath.Sum(clean.Flux) / float64(n)

	y := make([]float64, n)
	for i, v := range clean.Flux {
		y[i] = v - mean
	}

	wMin := int(math.Floor(minDur * float64(bins)))
	if wMin < 1 {
		wMin = 1
	}

	wMax := int(math.Ceil(maxDur * float64(bins)))
	if wMax < wMin {
		wMax = wMin
	}

	df := 1 / (float64(oversample) * span)
	fMin := 1 / maxP
	fMax := 1 / minP

	pg := &Periodogram{}

	binSum := make([]float64, bins)
	binCnt := make([]int, bins)

	for f := fMin; f <= fMax; f += df {
		period := 1 / f

		for i := range binSum {
			binSum[i] = 0
			binCnt[i] = 0
		}

		for i, ti := range t {
			phase := math.Mod(ti, period) / period
			if phase < 0 {
				phase++
			}

			b := int(phase * float64(bins))
			if b >= bins {
				b = bins - 1
			}

			binSum[b] += y[i]
			binCnt[b]++
		}

		best := 0.0

		for w := wMin; w <= wMax; w++ {
			// Circular sliding box over the phase bins.
			var s float64
			var c int

			for b := 0; b < w; b++ {
				s += binSum[b]
				c += binCnt[b]
			}

			for start := 0; start < bins; start++ {
				r := float64(c) / float64(n)
				if c > 0 && c < n {
					residue := s * s / (r * (1 - r))
					if residue > best {
						best = residue
					}
				}

				out := start
				in := (start + w) % bins
				s += binSum[in] - binSum[out]
				c += binCnt[in] - binCnt[out]
			}
		}

		pg.Periods = append(pg.Periods, period)
		pg.Power = append(pg.Power, best)
	}

	if pg.Len() == 0 {
		return nil, ErrEmptyPeriodogram
	}

	return pg, nil
}

// EstimatePeriod returns the trial period with the highest residue. It
// satisfies period.SpectralEstimator.
func (bls BoxLeastSquares) EstimatePeriod(lc *lightcurve.LightCurve) (float64, error) {
	pg, err := bls.Periodogram(lc)
	if err != nil {
		return 0, err
	}

	return pg.PeriodAtMaxPower()
}
