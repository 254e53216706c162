package period

import (
	"fmt"
	"math"
)

// Default search parameters. MinPeriod and MaxPeriod bound the plausible
// period range in days; together with the bracket factors they match the
// regime of short-period variables and eclipsing binaries this search was
// tuned for.
const (
	DefaultSmoothWindow  = 13
	DefaultMinPeriod     = 0.042
	DefaultMaxPeriod     = 15.0
	DefaultBracketLow    = 0.7
	DefaultBracketHigh   = 1.3
	DefaultTolerance     = 0.0001
	DefaultMaxIterations = 10000
)

// Config holds the tunables of the period search. The zero value selects
// the defaults above.
type Config struct {
	// SmoothWindow is the moving-median window applied to the folded flux.
	// Must be odd and >= 3.
	SmoothWindow int

	// MinPeriod and MaxPeriod clamp the refinement bracket (days).
	MinPeriod float64
	MaxPeriod float64

	// BracketLow and BracketHigh scale the initial guess into the starting
	// bracket; BracketLow must be in (0, 1) and BracketHigh > 1.
	BracketLow  float64
	BracketHigh float64

	// Tolerance is the absolute bracket width below which refinement stops.
	Tolerance float64

	// MaxIterations caps the refinement loop; exceeding it yields
	// ErrNoConvergence instead of looping forever on pathological
	// floating-point brackets.
	MaxIterations int
}

// normalizeConfig fills zero-valued fields with the package defaults.
func normalizeConfig(cfg Config) Config {
	if cfg.SmoothWindow == 0 {
		cfg.SmoothWindow = DefaultSmoothWindow
	}

	if cfg.MinPeriod == 0 {
		cfg.MinPeriod = DefaultMinPeriod
	}

	if cfg.MaxPeriod == 0 {
		cfg.MaxPeriod = DefaultMaxPeriod
	}

	if cfg.BracketLow == 0 {
		cfg.BracketLow = DefaultBracketLow
	}

	if cfg.BracketHigh == 0 {
		cfg.BracketHigh = DefaultBracketHigh
	}

	if cfg.Tolerance == 0 {
		cfg.Tolerance = DefaultTolerance
	}

	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}

	return cfg
}

// validate rejects configurations the search cannot run with. It expects a
// normalized config.
func (cfg Config) validate() error {
	if cfg.SmoothWindow < 3 || cfg.SmoothWindow%2 == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, cfg.SmoothWindow)
	}

	if cfg.MinPeriod <= 0 || math.IsNaN(cfg.MinPeriod) {
		return fmt.Errorf("%w: min period %g", ErrInvalidConfig, cfg.MinPeriod)
	}

	if cfg.MaxPeriod <= cfg.MinPeriod {
		return fmt.Errorf("%w: period range [%g, %g]", ErrInvalidConfig, cfg.MinPeriod, cfg.MaxPeriod)
	}

	if cfg.BracketLow <= 0 || cfg.BracketLow >= 1 {
		return fmt.Errorf("%w: bracket low factor %g", ErrInvalidConfig, cfg.BracketLow)
	}

	if cfg.BracketHigh <= 1 {
		return fmt.Errorf("%w: bracket high factor %g", ErrInvalidConfig, cfg.BracketHigh)
	}

	if cfg.Tolerance <= 0 || math.IsNaN(cfg.Tolerance) {
		return fmt.Errorf("%w: tolerance %g", ErrInvalidConfig, cfg.Tolerance)
	}

	if cfg.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, cfg.MaxIterations)
	}

	return nil
}
