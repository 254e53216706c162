package period

import "errors"

// Errors returned by the period-search stages.
var (
	ErrNonPositivePeriod   = errors.New("period: candidate period must be positive")
	ErrInsufficientSamples = errors.New("period: need more than two clean samples")
	ErrInvalidWindow       = errors.New("period: smoothing window must be odd and >= 3")
	ErrInvalidConfig       = errors.New("period: invalid configuration")
	ErrNoConvergence       = errors.New("period: refinement exceeded its iteration bound")
	ErrUpstreamEstimate    = errors.New("period: spectral estimator returned no usable period")
	ErrInvalidScaleFactor  = errors.New("period: scale factor must be positive")
)
