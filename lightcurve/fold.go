package lightcurve

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidPeriod is returned when folding on a non-positive period.
var ErrInvalidPeriod = errors.New("lightcurve: fold period must be positive")

// FoldedCurve is a light curve mapped onto a single cycle of a candidate
// period. Samples are ordered by phase. Phase is in the same time unit as
// the source curve unless the fold was phase-normalized, in which case it
// lies in [0, 1).
type FoldedCurve struct {
	Phase  []float64
	Flux   []float64
	Period float64
	Label  string
}

// Len returns the number of samples in the folded curve.
func (fc *FoldedCurve) Len() int { return len(fc.Phase) }

type foldConfig struct {
	epoch     float64
	normalize bool
}

// FoldOption adjusts how a curve is folded.
type FoldOption func(*foldConfig)

// WithEpoch sets the reference time subtracted before folding, so that the
// given timestamp lands on phase zero.
func WithEpoch(t float64) FoldOption {
	return func(cfg *foldConfig) {
		cfg.epoch = t
	}
}

// WithNormalizedPhase divides phases by the period, mapping them to [0, 1).
func WithNormalizedPhase() FoldOption {
	return func(cfg *foldConfig) {
		cfg.normalize = true
	}
}

// Fold maps each sample time onto a phase via (time - epoch) mod period and
// returns the phase-ordered result. The receiver is not modified; each call
// allocates a fresh folded curve.
func (lc *LightCurve) Fold(period float64, opts ...FoldOption) (*FoldedCurve, error) {
	if period <= 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidPeriod, period)
	}

	if lc.Len() == 0 {
		return nil, ErrEmptyCurve
	}

	var cfg foldConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := lc.Len()

	fc := &FoldedCurve{
		Phase:  make([]float64, n),
		Flux:   make([]float64, n),
		Period: period,
		Label:  lc.Label,
	}

	for i, t := range lc.Time {
		phase := math.Mod(t-cfg.epoch, period)
		if phase < 0 {
			phase += period
		}

		if cfg.normalize {
			phase /= period
		}

		fc.Phase[i] = phase
		fc.Flux[i] = lc.Flux[i]
	}

	sort.Sort(byPhase{fc})

	return fc, nil
}

// byPhase sorts a folded curve by ascending phase, keeping flux aligned.
type byPhase struct{ fc *FoldedCurve }

func (s byPhase) Len() int           { return s.fc.Len() }
func (s byPhase) Less(i, j int) bool { return s.fc.Phase[i] < s.fc.Phase[j] }
func (s byPhase) Swap(i, j int) {
	s.fc.Phase[i], s.fc.Phase[j] = s.fc.Phase[j], s.fc.Phase[i]
	s.fc.Flux[i], s.fc.Flux[j] = s.fc.Flux[j], s.fc.Flux[i]
}
