package periodogram

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lightcurve/internal/testutil"
	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

func TestAutocorrelation_RecoversSinePeriod(t *testing.T) {
	const truePeriod = 4.0

	lc := testutil.SineCurve(truePeriod, 40, 1024, 0.1, 0.002, 7)

	got, err := Autocorrelation{}.EstimatePeriod(lc)
	if err != nil {
		t.Fatalf("EstimatePeriod: %v", err)
	}

	if math.Abs(got-truePeriod)/truePeriod > 0.02 {
		t.Errorf("estimated %v, want within 2%% of %v", got, truePeriod)
	}
}

func TestAutocorrelation_RejectsUnevenSampling(t *testing.T) {
	times := make([]float64, 12)
	flux := make([]float64, 12)
	for i := range times {
		times[i] = float64(i)
		flux[i] = 1
	}

	// A data gap of three cadences.
	for i := 8; i < 12; i++ {
		times[i] += 3
	}

	lc, err := lightcurve.New(times, flux, nil, nil, "gapped")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = Autocorrelation{}.EstimatePeriod(lc)
	if !errors.Is(err, ErrUnevenSampling) {
		t.Fatalf("expected ErrUnevenSampling, got %v", err)
	}
}

func TestAutocorrelation_TooFewSamples(t *testing.T) {
	lc := testutil.SineCurve(2.0, 4, 5, 0.1, 0, 1)

	_, err := Autocorrelation{}.EstimatePeriod(lc)
	if !errors.Is(err, ErrTooFewSamples) {
		t.Fatalf("expected ErrTooFewSamples, got %v", err)
	}
}

func TestAutocorrelation_InvalidLagRange(t *testing.T) {
	lc := testutil.SineCurve(2.0, 20, 100, 0.1, 0, 1)

	_, err := Autocorrelation{MinPeriod: 5, MaxPeriod: 1}.EstimatePeriod(lc)
	if !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("expected ErrInvalidGrid, got %v", err)
	}
}
