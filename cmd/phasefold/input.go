package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
	"github.com/cwbudde/algo-lightcurve/period"
	"github.com/cwbudde/algo-lightcurve/periodogram"
)

// loadCurve reads a light curve from a CSV or XLSX file, selected by file
// extension, and normalizes it to relative flux.
func loadCurve(path string, cmd *cobra.Command) (*lightcurve.LightCurve, error) {
	var (
		lc  *lightcurve.LightCurve
		err error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		lc, err = lightcurve.ReadCSV(path)
	case ".xlsx":
		sheet, _ := cmd.Flags().GetString("sheet")
		timeCol, _ := cmd.Flags().GetInt("time-col")
		fluxCol, _ := cmd.Flags().GetInt("flux-col")
		lc, err = lightcurve.ReadXLSX(path, sheet, timeCol, fluxCol)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", path)
	}

	if err != nil {
		return nil, err
	}

	return lc.Normalize()
}

// newSpectral builds the configured spectral estimator.
func newSpectral(cmd *cobra.Command) (period.SpectralEstimator, error) {
	method, _ := cmd.Flags().GetString("method")
	if method == "" {
		method = viper.GetString("method")
	}

	minPeriod, _ := cmd.Flags().GetFloat64("min-period")
	maxPeriod, _ := cmd.Flags().GetFloat64("max-period")
	oversample, _ := cmd.Flags().GetInt("oversample")

	switch method {
	case "bls":
		return periodogram.BoxLeastSquares{
			MinPeriod:  minPeriod,
			MaxPeriod:  maxPeriod,
			Oversample: oversample,
		}, nil
	case "generic":
		return periodogram.LombScargle{
			MinPeriod:  minPeriod,
			MaxPeriod:  maxPeriod,
			Oversample: oversample,
		}, nil
	case "autocorr":
		return periodogram.Autocorrelation{
			MinPeriod: minPeriod,
			MaxPeriod: maxPeriod,
		}, nil
	default:
		return nil, fmt.Errorf("unknown method %q: want bls, generic or autocorr", method)
	}
}

// addEstimationFlags registers the flags shared by estimate and fold.
func addEstimationFlags(cmd *cobra.Command) {
	cmd.Flags().String("method", viper.GetString("method"), "initial guess method: bls, generic, or autocorr")
	cmd.Flags().Float64("min-period", 0.042, "shortest trial period in days")
	cmd.Flags().Float64("max-period", 0, "longest trial period in days (0: derived from the curve)")
	cmd.Flags().Int("oversample", 5, "periodogram oversampling factor")
	cmd.Flags().String("sheet", "", "XLSX sheet name (default: first sheet)")
	cmd.Flags().Int("time-col", 1, "1-based XLSX column holding timestamps")
	cmd.Flags().Int("flux-col", 2, "1-based XLSX column holding flux values")
}
