package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
)

// SineCurve generates an evenly sampled sinusoidal light curve around unit
// flux. noise is the amplitude of uniform noise added from a fixed seed for
// reproducibility. Quality flags are all clean.
func SineCurve(period, span float64, samples int, amplitude, noise float64, seed int64) *lightcurve.LightCurve {
	lc := &lightcurve.LightCurve{
		Time:    make([]float64, samples),
		Flux:    make([]float64, samples),
		FluxErr: make([]float64, samples),
		Quality: make([]int, samples),
		Label:   "synthetic-sine",
	}

	rng := rand.New(rand.NewSource(seed))
	dt := span / float64(samples-1)

	for i := range lc.Time {
		t := float64(i) * dt
		lc.Time[i] = t
		lc.Flux[i] = 1 + amplitude*math.Sin(2*math.Pi*t/period)

		if noise > 0 {
			lc.Flux[i] += (rng.Float64()*2 - 1) * noise
			lc.FluxErr[i] = noise
		}
	}

	return lc
}

// EclipsingBinaryCurve generates an evenly sampled curve with two
// box-shaped dips per cycle: a primary eclipse of depth primaryDepth at
// phase zero and a secondary of depth secondaryDepth at phase 0.5, each
// covering a tenth of the cycle. Equal depths make the half-period fold
// nearly as clean as the true one, the classic half/double alias.
func EclipsingBinaryCurve(period, span float64, samples int, primaryDepth, secondaryDepth, noise float64, seed int64) *lightcurve.LightCurve {
	const eclipseWidth = 0.1

	lc := &lightcurve.LightCurve{
		Time:    make([]float64, samples),
		Flux:    make([]float64, samples),
		FluxErr: make([]float64, samples),
		Quality: make([]int, samples),
		Label:   "synthetic-eb",
	}

	rng := rand.New(rand.NewSource(seed))
	dt := span / float64(samples-1)

	for i := range lc.Time {
		t := float64(i) * dt
		lc.Time[i] = t

		phase := math.Mod(t, period) / period

		flux := 1.0

		switch {
		case phase < eclipseWidth/2 || phase > 1-eclipseWidth/2:
			flux -= primaryDepth
		case math.Abs(phase-0.5) < eclipseWidth/2:
			flux -= secondaryDepth
		}

		if noise > 0 {
			flux += (rng.Float64()*2 - 1) * noise
			lc.FluxErr[i] = noise
		}

		lc.Flux[i] = flux
	}

	return lc
}
