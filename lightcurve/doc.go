// Package lightcurve provides the light-curve data model shared by the rest
// of this module: a time series of flux measurements with per-sample quality
// flags, plus quality filtering, median normalization, phase folding and
// simple file ingestion/export.
//
// All operations return new curves; a LightCurve is never mutated once
// built, which makes concurrent use across goroutines safe without locking.
//
// # Folding
//
// Folding maps each timestamp onto a phase via time mod period, aligning
// repeating signal cycles onto a common axis:
//
//	lc, _ := lightcurve.ReadCSV("tic-12345.csv")
//	folded, _ := lc.Clean().Fold(2.47, lightcurve.WithEpoch(1325.5))
//	_ = folded.WriteCSV("tic-12345-folded.csv")
//
// The folded curve is ordered by phase and carries the period it was folded
// on, ready for plotting or export by an outer layer.
package lightcurve
