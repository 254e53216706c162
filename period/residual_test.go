package period

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-lightcurve/internal/testutil"
	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

func TestResidualStdDev_InvalidPeriod(t *testing.T) {
	lc := testutil.SineCurve(2.0, 20, 100, 0.1, 0, 1)

	for _, p := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := ResidualStdDev(lc, p, DefaultSmoothWindow)
		if !errors.Is(err, ErrNonPositivePeriod) {
			t.Errorf("period %v: expected ErrNonPositivePeriod, got %v", p, err)
		}
	}
}

func TestResidualStdDev_InvalidWindow(t *testing.T) {
	lc := testutil.SineCurve(2.0, 20, 100, 0.1, 0, 1)

	for _, w := range []int{0, 1, 2, 4, 12} {
		_, err := ResidualStdDev(lc, 2.0, w)
		if !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("window %d: expected ErrInvalidWindow, got %v", w, err)
		}
	}
}

func TestResidualStdDev_SampleCountBoundary(t *testing.T) {
	two := &lightcurve.LightCurve{
		Time:    []float64{0, 1},
		Flux:    []float64{1, 1},
		FluxErr: []float64{0, 0},
		Quality: []int{0, 0},
	}

	_, err := ResidualStdDev(two, 1.0, DefaultSmoothWindow)
	if !errors.Is(err, ErrInsufficientSamples) {
		t.Fatalf("2 samples: expected ErrInsufficientSamples, got %v", err)
	}

	// Exactly three samples is the smallest valid input: N-2 = 1. The
	// window is clamped to 3.
	three := &lightcurve.LightCurve{
		Time:    []float64{0, 1, 2},
		Flux:    []float64{1, 1.1, 0.9},
		FluxErr: []float64{0, 0, 0},
		Quality: []int{0, 0, 0},
	}

	score, err := ResidualStdDev(three, 1.5, DefaultSmoothWindow)
	if err != nil {
		t.Fatalf("3 samples: %v", err)
	}

	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		t.Fatalf("3 samples: non-finite or negative score %v", score)
	}
}

func TestResidualStdDev_EnforcesQualityFilter(t *testing.T) {
	lc := testutil.SineCurve(2.0, 20, 200, 0.1, 0.005, 7)

	// Corrupt a handful of samples and flag them as bad; the score must
	// match the manually cleaned curve.
	dirty := lc.Filter(func(int) bool { return true })
	for _, i := range []int{10, 50, 90, 130} {
		dirty.Flux[i] = 1e6
		dirty.Quality[i] = 2048
	}

	wantScore, err := ResidualStdDev(lc.Filter(func(i int) bool { return i != 10 && i != 50 && i != 90 && i != 130 }), 2.0, DefaultSmoothWindow)
	if err != nil {
		t.Fatalf("clean score: %v", err)
	}

	gotScore, err := ResidualStdDev(dirty, 2.0, DefaultSmoothWindow)
	if err != nil {
		t.Fatalf("dirty score: %v", err)
	}

	testutil.RequireNear(t, gotScore, wantScore, 1e-12)
}

func TestResidualStdDev_MinimalAtTruePeriod(t *testing.T) {
	const truePeriod = 2.0

	lc := testutil.SineCurve(truePeriod, 20, 400, 0.05, 0, 1)

	trueScore, err := ResidualStdDev(lc, truePeriod, DefaultSmoothWindow)
	if err != nil {
		t.Fatalf("score at true period: %v", err)
	}

	bestP, bestScore := 0.0, math.Inf(1)

	for p := 0.7 * truePeriod; p <= 1.3*truePeriod; p += 0.005 {
		score, err := ResidualStdDev(lc, p, DefaultSmoothWindow)
		if err != nil {
			t.Fatalf("score at %v: %v", p, err)
		}

		if score < bestScore {
			bestP, bestScore = p, score
		}
	}

	if math.Abs(bestP-truePeriod)/truePeriod > 0.02 {
		t.Errorf("sweep minimum at %v, want within 2%% of %v", bestP, truePeriod)
	}

	if trueScore > 1.05*bestScore {
		t.Errorf("score at true period %v not near sweep minimum %v", trueScore, bestScore)
	}
}

func TestResidualStdDev_Pure(t *testing.T) {
	lc := testutil.SineCurve(3.0, 30, 300, 0.1, 0.01, 3)

	timeBefore := append([]float64(nil), lc.Time...)
	fluxBefore := append([]float64(nil), lc.Flux...)

	first, err := ResidualStdDev(lc, 3.1, DefaultSmoothWindow)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	second, err := ResidualStdDev(lc, 3.1, DefaultSmoothWindow)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if first != second {
		t.Errorf("not deterministic: %v vs %v", first, second)
	}

	testutil.RequireSliceNearlyEqual(t, lc.Time, timeBefore, 0)
	testutil.RequireSliceNearlyEqual(t, lc.Flux, fluxBefore, 0)
}

func TestResidualStdDev_ClampsOversizedWindow(t *testing.T) {
	lc := testutil.SineCurve(2.0, 4, 7, 0.1, 0, 1)

	// 7 samples, window 13: clamped to 7.
	score, err := ResidualStdDev(lc, 2.0, 13)
	if err != nil {
		t.Fatalf("oversized window: %v", err)
	}

	clamped, err := ResidualStdDev(lc, 2.0, 7)
	if err != nil {
		t.Fatalf("window 7: %v", err)
	}

	testutil.RequireNear(t, score, clamped, 1e-15)
}
