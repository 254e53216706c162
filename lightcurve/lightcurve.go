package lightcurve

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by light-curve constructors and transforms.
var (
	ErrEmptyCurve     = errors.New("lightcurve: curve must contain at least one sample")
	ErrLengthMismatch = errors.New("lightcurve: sample columns must have equal length")
	ErrZeroMedian     = errors.New("lightcurve: cannot normalize a curve with zero median flux")
)

// LightCurve is a time series of brightness measurements of a single target.
//
// The columns are parallel: index i describes one sample with timestamp
// Time[i] (days), flux Flux[i], flux uncertainty FluxErr[i] and an integer
// quality flag Quality[i]. A quality flag of zero marks a sample free of
// known instrumental defects; most consumers operate on the Clean() subset.
type LightCurve struct {
	Time    []float64
	Flux    []float64
	FluxErr []float64
	Quality []int
	Label   string
}

// New builds a light curve from parallel columns.
//
// All slices must have the same, non-zero length. FluxErr and Quality may be
// nil, in which case they default to zero uncertainties and clean flags.
// The slices are copied; the caller keeps ownership of its inputs.
func New(time, flux, fluxErr []float64, quality []int, label string) (*LightCurve, error) {
	n := len(time)
	if n == 0 {
		return nil, ErrEmptyCurve
	}

	if len(flux) != n {
		return nil, fmt.Errorf("%w: %d time vs %d flux", ErrLengthMismatch, n, len(flux))
	}

	if fluxErr != nil && len(fluxErr) != n {
		return nil, fmt.Errorf("%w: %d time vs %d flux_err", ErrLengthMismatch, n, len(fluxErr))
	}

	if quality != nil && len(quality) != n {
		return nil, fmt.Errorf("%w: %d time vs %d quality", ErrLengthMismatch, n, len(quality))
	}

	lc := &LightCurve{
		Time:    append([]float64(nil), time...),
		Flux:    append([]float64(nil), flux...),
		FluxErr: make([]float64, n),
		Quality: make([]int, n),
		Label:   label,
	}

	if fluxErr != nil {
		copy(lc.FluxErr, fluxErr)
	}

	if quality != nil {
		copy(lc.Quality, quality)
	}

	return lc, nil
}

// Len returns the number of samples in the curve.
func (lc *LightCurve) Len() int { return len(lc.Time) }

// Filter returns a new curve containing only the samples for which keep
// returns true. The receiver is left untouched.
func (lc *LightCurve) Filter(keep func(i int) bool) *LightCurve {
	out := &LightCurve{Label: lc.Label}

	for i := range lc.Time {
		if !keep(i) {
			continue
		}

		out.Time = append(out.Time, lc.Time[i])
		out.Flux = append(out.Flux, lc.Flux[i])
		out.FluxErr = append(out.FluxErr, lc.FluxErr[i])
		out.Quality = append(out.Quality, lc.Quality[i])
	}

	return out
}

// Clean returns the subset of samples with quality flag zero.
func (lc *LightCurve) Clean() *LightCurve {
	return lc.Filter(func(i int) bool { return lc.Quality[i] == 0 })
}

// Normalize returns a new curve with flux (and flux uncertainty) divided by
// the median flux, yielding relative flux around 1. Spectral peak locations
// are unaffected by the scaling; normalizing simply puts curves from
// different instruments on a common footing.
func (lc *LightCurve) Normalize() (*LightCurve, error) {
	if lc.Len() == 0 {
		return nil, ErrEmptyCurve
	}

	med := medianOf(lc.Flux)
	if med == 0 || math.IsNaN(med) {
		return nil, fmt.Errorf("%w: median %g", ErrZeroMedian, med)
	}

	out := &LightCurve{
		Time:    append([]float64(nil), lc.Time...),
		Flux:    make([]float64, lc.Len()),
		FluxErr: make([]float64, lc.Len()),
		Quality: append([]int(nil), lc.Quality...),
		Label:   lc.Label,
	}

	inv := 1 / med
	vecmath.ScaleBlock(out.Flux, lc.Flux, inv)
	vecmath.ScaleBlock(out.FluxErr, lc.FluxErr, inv)

	return out, nil
}

// medianOf returns the median of x without modifying it.
func medianOf(x []float64) float64 {
	tmp := append([]float64(nil), x...)
	sort.Float64s(tmp)

	n := len(tmp)
	if n%2 == 1 {
		return tmp[n/2]
	}

	return (tmp[n/2-1] + tmp[n/2]) / 2
}
