// Package main is the entry point for the phasefold CLI, a batch frontend
// for the period estimator: it loads light curves from CSV or XLSX files,
// estimates their orbital/rotation periods and exports phase-folded curves.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the phasefold CLI.
var rootCmd = &cobra.Command{
	Use:   "phasefold",
	Short: "Period estimation and phase folding for astronomical light curves",
	Long: `phasefold estimates the dominant period of a light curve and folds it on
that period. The initial guess comes from a periodogram (box least squares,
a generic oversampled periodogram, or FFT autocorrelation); a local search
then refines the guess against a residual-smoothness score and resolves the
half/double-period ambiguity.

Input files are CSV tables with time, flux, flux_err and quality columns,
or XLSX sheets with numeric time and flux columns.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./phasefold.yaml or ~/.config/phasefold/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("phasefold")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "phasefold"))
		}
	}

	viper.SetEnvPrefix("PHASEFOLD")
	viper.AutomaticEnv()

	viper.SetDefault("method", "bls")
	viper.SetDefault("min-period", 0.042)
	viper.SetDefault("oversample", 5)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
