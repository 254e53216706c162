package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lightcurve/period"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate [files...]",
	Short: "Estimate the period of one or more light curves",
	Long: `Estimate prints the best-fitting period for each input light curve, one
line per file. Estimation failures are reported per file and do not abort
the remaining inputs; the command exits non-zero if any curve failed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spectral, err := newSpectral(cmd)
		if err != nil {
			return err
		}

		est, err := period.NewEstimator(spectral, period.Config{})
		if err != nil {
			return err
		}

		failed := 0

		for _, path := range args {
			lc, err := loadCurve(path, cmd)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed++

				continue
			}

			p, err := est.Estimate(lc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed++

				continue
			}

			fmt.Printf("%s: %.4f d\n", lc.Label, p)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d curves failed", failed, len(args))
		}

		return nil
	},
}

func init() {
	addEstimationFlags(estimateCmd)

	rootCmd.AddCommand(estimateCmd)
}
