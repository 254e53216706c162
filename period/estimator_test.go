package period

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-lightcurve/internal/testutil"
	"github.com/cwbudde/algo-lightcurve/lightcurve"
	"github.com/cwbudde/algo-lightcurve/periodogram"
)

func TestNewEstimator_NilSpectral(t *testing.T) {
	_, err := NewEstimator(nil, Config{})
	if err == nil {
		t.Fatal("expected error for nil spectral estimator")
	}
}

func TestNewEstimator_InvalidConfig(t *testing.T) {
	_, err := NewEstimator(SpectralFunc(func(*lightcurve.LightCurve) (float64, error) {
		return 1, nil
	}), Config{Tolerance: -1})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestEstimate_PropagatesSpectralError(t *testing.T) {
	lc := testutil.SineCurve(2.0, 20, 200, 0.1, 0, 1)

	failing := SpectralFunc(func(*lightcurve.LightCurve) (float64, error) {
		return 0, fmt.Errorf("no significant peak")
	})

	_, err := Estimate(lc, failing, Config{})
	if !errors.Is(err, ErrUpstreamEstimate) {
		t.Fatalf("expected ErrUpstreamEstimate, got %v", err)
	}
}

func TestEstimate_RejectsNonPositiveGuess(t *testing.T) {
	lc := testutil.SineCurve(2.0, 20, 200, 0.1, 0, 1)

	for _, guess := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		g := guess

		_, err := Estimate(lc, SpectralFunc(func(*lightcurve.LightCurve) (float64, error) {
			return g, nil
		}), Config{})
		if !errors.Is(err, ErrUpstreamEstimate) {
			t.Errorf("guess %v: expected ErrUpstreamEstimate, got %v", g, err)
		}
	}
}

func TestEstimate_InsufficientSamples(t *testing.T) {
	two := &lightcurve.LightCurve{
		Time:    []float64{0, 1},
		Flux:    []float64{1, 1},
		FluxErr: []float64{0, 0},
		Quality: []int{0, 0},
	}

	spectral := SpectralFunc(func(*lightcurve.LightCurve) (float64, error) {
		t.Fatal("spectral estimator must not run on an undersized curve")
		return 0, nil
	})

	_, err := Estimate(two, spectral, Config{})
	if !errors.Is(err, ErrInsufficientSamples) {
		t.Fatalf("expected ErrInsufficientSamples, got %v", err)
	}
}

func TestEstimate_RecoversFromCoarseGuess(t *testing.T) {
	const truePeriod = 2.0

	lc := testutil.SineCurve(truePeriod, 20, 500, 0.1, 0, 1)

	got, err := Estimate(lc, SpectralFunc(func(*lightcurve.LightCurve) (float64, error) {
		return 2.4, nil
	}), Config{})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if math.Abs(got-truePeriod)/truePeriod > 0.025 {
		t.Errorf("estimated %v, want within 2.5%% of %v", got, truePeriod)
	}
}

func TestEstimate_CorrectsDoublePeriodGuess(t *testing.T) {
	// The spectral guess lands on the 2x alias; the harmonic correction
	// must bring the estimate back down to the fundamental.
	const truePeriod = 2.5

	lc := testutil.SineCurve(truePeriod, 30, 1000, 0.5, 0.002, 13)

	got, err := Estimate(lc, SpectralFunc(func(*lightcurve.LightCurve) (float64, error) {
		return 2 * truePeriod, nil
	}), Config{})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if math.Abs(got-truePeriod)/truePeriod > 0.01 {
		t.Errorf("estimated %v, want within 1%% of %v", got, truePeriod)
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	lc := testutil.SineCurve(2.0, 20, 400, 0.1, 0.01, 9)

	e, err := NewEstimator(SpectralFunc(func(*lightcurve.LightCurve) (float64, error) {
		return 2.2, nil
	}), Config{})
	if err != nil {
		t.Fatalf("NewEstimator: %v", err)
	}

	p1, err := e.Estimate(lc)
	if err != nil {
		t.Fatalf("first Estimate: %v", err)
	}

	p2, err := e.Estimate(lc)
	if err != nil {
		t.Fatalf("second Estimate: %v", err)
	}

	if p1 != p2 {
		t.Errorf("not idempotent: %v vs %v", p1, p2)
	}
}

func TestEstimate_SkipsFlaggedSamples(t *testing.T) {
	const truePeriod = 2.0

	lc := testutil.SineCurve(truePeriod, 20, 500, 0.1, 0, 1)

	dirty := lc.Filter(func(int) bool { return true })
	for _, i := range []int{20, 120, 220, 320} {
		dirty.Flux[i] = 1e6
		dirty.Quality[i] = 16
	}

	got, err := Estimate(dirty, SpectralFunc(func(*lightcurve.LightCurve) (float64, error) {
		return 2.4, nil
	}), Config{})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if math.Abs(got-truePeriod)/truePeriod > 0.025 {
		t.Errorf("estimated %v, want within 2.5%% of %v", got, truePeriod)
	}
}

func TestEstimate_FullPipelineLombScargle(t *testing.T) {
	if testing.Short() {
		t.Skip("dense periodogram grid is slow")
	}

	const truePeriod = 5.0

	lc := testutil.SineCurve(truePeriod, 30, 1000, 0.1, 0.002, 21)

	spectral := &periodogram.LombScargle{MinPeriod: DefaultMinPeriod, Oversample: 300}

	got, err := Estimate(lc, spectral, Config{})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	if math.Abs(got-truePeriod)/truePeriod > 0.01 {
		t.Errorf("estimated %v, want within 1%% of %v", got, truePeriod)
	}
}
