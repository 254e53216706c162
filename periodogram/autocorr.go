package periodogram

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

// cadenceTolerance is the maximum relative deviation of any sampling step
// from the mean cadence before a curve is rejected as unevenly sampled.
const cadenceTolerance = 0.05

// Autocorrelation estimates the period of an evenly sampled curve from the
// dominant peak of its autocorrelation, computed via FFT. A parabolic fit
// through the integer peak and its neighbors recovers a sub-cadence lag.
//
// Unlike LombScargle and BoxLeastSquares this estimator requires a uniform
// cadence; curves whose sampling deviates by more than a few percent are
// rejected with ErrUnevenSampling.
type Autocorrelation struct {
	// MinPeriod is the shortest period considered (days). Zero selects
	// twice the cadence.
	MinPeriod float64

	// MaxPeriod is the longest period considered (days). Zero selects 80%
	// of the observation span.
	MaxPeriod float64
}

// EstimatePeriod returns the lag of the strongest autocorrelation peak,
// converted to the curve's time unit. It satisfies
// period.SpectralEstimator.
func (ac Autocorrelation) EstimatePeriod(lc *lightcurve.LightCurve) (float64, error) {
	clean := lc.Clean()

	n := clean.Len()
	if n < 10 {
		return 0, fmt.Errorf("%w: got %d, need 10", ErrTooFewSamples, n)
	}

	t := clean.Time

	dt := (t[n-1] - t[0]) / float64(n-1)
	if dt <= 0 {
		return 0, fmt.Errorf("%w: non-positive mean cadence %g", ErrInvalidGrid, dt)
	}

	for i := 1; i < n; i++ {
		if math.Abs(t[i]-t[i-1]-dt) > cadenceTolerance*dt {
			return 0, fmt.Errorf("%w: step %g at index %d vs mean cadence %g",
				ErrUnevenSampling, t[i]-t[i-1], i, dt)
		}
	}

	r, err := autocorrelate(clean.Flux)
	if err != nil {
		return 0, err
	}

	minLag := 1
	if ac.MinPeriod > 0 {
		minLag = int(math.Max(1, ac.MinPeriod/dt))
	}

	maxLag := int(0.8 * float64(n))
	if ac.MaxPeriod > 0 {
		maxLag = int(ac.MaxPeriod / dt)
	}

	if maxLag > n-2 {
		maxLag = n - 2
	}

	if minLag >= maxLag {
		return 0, fmt.Errorf("%w: lag range [%d, %d]", ErrInvalidGrid, minLag, maxLag)
	}

	lag := peakLag(r, minLag, maxLag)

	return lag * dt, nil
}

// autocorrelate computes the autocorrelation of x for lags 0..len(x)-1
// using zero-padded FFTs, normalized so that lag zero equals 1.
func autocorrelate(x []float64) ([]float64, error) {
	n := len(x)

	mean := vecmath.Sum(x) / float64(n)

	size := nextPowerOf2(2 * n)

	in := make([]complex128, size)
	for i, v := range x {
		in[i] = complex(v-mean, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("periodogram: failed to create FFT plan: %w", err)
	}

	freq := make([]complex128, size)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("periodogram: forward FFT failed: %w", err)
	}

	for i, c := range freq {
		freq[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}

	out := make([]complex128, size)
	if err := plan.Inverse(out, freq); err != nil {
		return nil, fmt.Errorf("periodogram: inverse FFT failed: %w", err)
	}

	r := make([]float64, n)
	for i := range r {
		r[i] = real(out[i])
	}

	if r[0] != 0 {
		vecmath.ScaleBlockInPlace(r, 1/r[0])
	}

	return r, nil
}

// peakLag finds the strongest autocorrelation lag in [minLag, maxLag] and
// refines it with a parabolic fit through the neighboring values. Fits that
// push the vertex beyond the neighboring lags are discarded as unreliable.
//
// The zero-lag shoulder of a smooth signal stays near 1 for small lags and
// would always outscore the true peak, so the search starts after the first
// zero crossing when one exists inside the range.
func peakLag(r []float64, minLag, maxLag int) float64 {
	start := minLag
	for start < maxLag && r[start] > 0 {
		start++
	}

	if start >= maxLag {
		start = minLag
	}

	best := start
	for i := start + 1; i <= maxLag; i++ {
		if r[i] > r[best] {
			best = i
		}
	}

	if best <= 0 || best >= len(r)-1 {
		return float64(best)
	}

	y1 := r[best-1]
	y2 := r[best]
	y3 := r[best+1]

	den := y1 - 2*y2 + y3

	dx := 0.0
	if den != 0 {
		dx = 0.5 * (y1 - y3) / den
		if math.Abs(dx) > 0.9 {
			dx = 0
		}
	}

	return float64(best) + dx
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
