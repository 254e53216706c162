package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lightcurve/lightcurve"
	"github.com/cwbudde/algo-lightcurve/period"
)

var foldCmd = &cobra.Command{
	Use:   "fold [file]",
	Short: "Fold a light curve and write the phase/flux table as CSV",
	Long: `Fold maps each sample of the input curve onto a phase and writes the
phase-ordered result as a two-column CSV. The folding period is taken from
--period, or estimated from the curve when the flag is left at zero. An
estimated or given period can be adjusted by --factor for manual
half/double corrections.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lc, err := loadCurve(args[0], cmd)
		if err != nil {
			return err
		}

		p, _ := cmd.Flags().GetFloat64("period")
		if p == 0 {
			spectral, err := newSpectral(cmd)
			if err != nil {
				return err
			}

			p, err = period.Estimate(lc, spectral, period.Config{})
			if err != nil {
				return err
			}
		}

		if factor, _ := cmd.Flags().GetFloat64("factor"); factor != 1 {
			p, err = period.Scale(p, factor)
			if err != nil {
				return err
			}
		}

		opts := []lightcurve.FoldOption{}

		if epoch, _ := cmd.Flags().GetFloat64("epoch"); epoch != 0 {
			opts = append(opts, lightcurve.WithEpoch(epoch))
		}

		if normalize, _ := cmd.Flags().GetBool("normalize-phase"); normalize {
			opts = append(opts, lightcurve.WithNormalizedPhase())
		}

		folded, err := lc.Clean().Fold(p, opts...)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = lc.Label + "-folded.csv"
		}

		if err := folded.WriteCSV(out); err != nil {
			return err
		}

		fmt.Printf("%s: folded %d samples on %.4f d -> %s\n", lc.Label, folded.Len(), p, out)

		return nil
	},
}

func init() {
	addEstimationFlags(foldCmd)

	foldCmd.Flags().Float64("period", 0, "folding period in days (0: estimate from the curve)")
	foldCmd.Flags().Float64("factor", 1, "multiply the folding period, e.g. 0.5, 2 or 3")
	foldCmd.Flags().Float64("epoch", 0, "reference time mapped to phase zero")
	foldCmd.Flags().Bool("normalize-phase", false, "express phase in [0,1) instead of days")
	foldCmd.Flags().String("out", "", "output CSV path (default: <label>-folded.csv)")

	rootCmd.AddCommand(foldCmd)
}
