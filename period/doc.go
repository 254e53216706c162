// Package period estimates the dominant period of a light curve by folding
// it on candidate periods and scoring how smooth the folded result is.
//
// The pipeline has three stages behind the Estimator facade:
//
//   - ResidualStdDev folds the curve on a candidate period, smooths the
//     folded flux with a moving median, and returns the standard deviation
//     of the residual between smoothed and raw flux. A good period aligns
//     repeating structure, so lower scores mean better folds.
//   - Refine walks a bracket around an initial guess (70% to 130%, clamped
//     to a plausible period range), repeatedly moving toward whichever side
//     of the bracket scores better until the bracket width drops below a
//     tolerance.
//   - CorrectHarmonic checks whether double or half the refined period
//     scores strictly better, catching the common half/double-period alias
//     of eclipse-like curves where primary and secondary dips make a
//     half-period fold look deceptively clean.
//
// The initial guess comes from an injected SpectralEstimator; the
// periodogram package provides implementations.
//
// # Usage
//
//	est, _ := period.NewEstimator(periodogram.LombScargle{
//	    MinPeriod:  0.042,
//	    Oversample: 300,
//	}, period.Config{})
//	p, err := est.Estimate(lc)
//
// # Limitations
//
// Refine is a derivative-free local minimizer. It assumes the residual
// score is roughly unimodal near the initial guess; on a multimodal score
// surface it can settle on a local rather than global minimum. Callers that
// need a global search should widen the periodogram stage, not the bracket.
//
// All functions are pure: they never mutate their input curve and hold no
// state between calls, so concurrent invocation is safe without locking,
// including concurrent trials on the same curve.
package period
