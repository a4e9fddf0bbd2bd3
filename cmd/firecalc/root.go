package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
)

var (
	flagVerbose  bool
	flagSettings string
	flagCurrency string
)

// settings and logger are set up by loadSettings before any command runs.
var (
	settings config.Settings    = config.DefaultSettings()
	logger   calculation.Logger = calculation.NopLogger{}
)

var rootCmd = &cobra.Command{
	Use:   "firecalc",
	Short: "FIRE (Financial Independence, Retire Early) calculators",
	Long: "Work out your FIRE number, Coast FIRE threshold, time to FIRE and safe withdrawal\n" +
		"amounts, or run a whole YAML plan of scenarios through every calculator.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log calculation details to stderr")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Settings file (default $XDG_CONFIG_HOME/firecalc/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "ISO 4217 currency for amounts (overrides settings)")
}

func settingsPath() string {
	if flagSettings != "" {
		return flagSettings
	}
	return config.SettingsPath()
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(settingsPath())
	if err != nil {
		return err
	}
	settings = s

	currency := s.Output.Currency
	if flagCurrency != "" {
		currency = flagCurrency
	}
	if err := output.SetCurrency(currency); err != nil {
		return err
	}

	if flagVerbose {
		logger = calculation.NewWriterLogger(cmd.ErrOrStderr(), true)
	} else {
		logger = calculation.NopLogger{}
	}
	return nil
}

// amountFlag reads a string flag as a number. Text that is not a finite
// number reads as 0.
func amountFlag(cmd *cobra.Command, name string) float64 {
	v, _ := cmd.Flags().GetString(name)
	return domain.ParseAmount(v)
}

// amountFlagOr is amountFlag, falling back to def when the flag was not given.
func amountFlagOr(cmd *cobra.Command, name string, def float64) float64 {
	if !cmd.Flags().Changed(name) {
		return def
	}
	return amountFlag(cmd, name)
}
