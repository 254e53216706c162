// Package periodogram provides spectral period estimators for light
// curves. Each estimator scans a grid of trial periods, producing a
// Periodogram (power versus period) whose peak serves as the initial guess
// for the local search in the period package.
//
// Three strategies are available:
//
//   - LombScargle: generic oversampled periodogram for unevenly sampled
//     curves, suited to roughly sinusoidal variability.
//   - BoxLeastSquares: searches for box-shaped dips, suited to transits and
//     eclipses.
//   - Autocorrelation: FFT-based autocorrelation peak with parabolic
//     interpolation, for evenly sampled curves.
//
// All three satisfy the period.SpectralEstimator interface.
package periodogram
