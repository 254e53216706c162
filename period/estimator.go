package period

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

// SpectralEstimator produces the initial period guess for the search,
// typically from a periodogram. Implementations receive the already-cleaned
// curve and must return a positive period in the curve's time unit.
type SpectralEstimator interface {
	EstimatePeriod(lc *lightcurve.LightCurve) (float64, error)
}

// SpectralFunc adapts a plain function to the SpectralEstimator interface.
type SpectralFunc func(lc *lightcurve.LightCurve) (float64, error)

// EstimatePeriod calls f.
func (f SpectralFunc) EstimatePeriod(lc *lightcurve.LightCurve) (float64, error) {
	return f(lc)
}

// Estimator runs the full period search: spectral guess, bracket
// refinement, harmonic correction.
type Estimator struct {
	cfg      Config
	spectral SpectralEstimator
}

// NewEstimator builds an estimator around the given spectral-guess
// strategy. A zero Config selects the package defaults.
func NewEstimator(spectral SpectralEstimator, cfg Config) (*Estimator, error) {
	if spectral == nil {
		return nil, errors.New("period: spectral estimator must not be nil")
	}

	cfg = normalizeConfig(cfg)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Estimator{cfg: cfg, spectral: spectral}, nil
}

// Config returns the estimator's normalized configuration.
func (e *Estimator) Config() Config { return e.cfg }

// Estimate returns the best-fitting period of the curve in the curve's
// time unit.
//
// The curve is filtered to its quality-zero subset, the spectral estimator
// supplies an initial guess, Refine narrows it and CorrectHarmonic resolves
// the half/double alias. Any stage error aborts the estimate; no default
// period is ever substituted for a failed spectral guess.
func (e *Estimator) Estimate(lc *lightcurve.LightCurve) (float64, error) {
	clean := lc.Clean()
	if clean.Len() <= 2 {
		return 0, fmt.Errorf("%w: got %d", ErrInsufficientSamples, clean.Len())
	}

	guess, err := e.spectral.EstimatePeriod(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstreamEstimate, err)
	}

	if guess <= 0 || math.IsNaN(guess) || math.IsInf(guess, 0) {
		return 0, fmt.Errorf("%w: guess %g", ErrUpstreamEstimate, guess)
	}

	refined, score, err := Refine(clean, guess, e.cfg)
	if err != nil {
		return 0, err
	}

	corrected, _, err := CorrectHarmonic(clean, refined, score, e.cfg)
	if err != nil {
		return 0, err
	}

	return corrected, nil
}

// Estimate is a one-shot helper for callers that do not reuse an Estimator.
func Estimate(lc *lightcurve.LightCurve, spectral SpectralEstimator, cfg Config) (float64, error) {
	e, err := NewEstimator(spectral, cfg)
	if err != nil {
		return 0, err
	}

	return e.Estimate(lc)
}
