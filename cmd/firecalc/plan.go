package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
)

var planCmd = &cobra.Command{
	Use:   "plan <file>",
	Short: "Run every calculator over the scenarios of a YAML plan",
	Long: "Run every calculator over the scenarios of a YAML plan and write a report.\n\n" +
		"Formats: " + strings.Join(output.AvailableFormatterNames(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringP("format", "f", "", "Report format (default from settings)")
	planCmd.Flags().StringP("out", "o", "", "Write the report into this directory instead of stdout")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return err
	}
	applyDefaults(cfg)

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	report, err := engine.RunPlan(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = settings.Output.Format
	}

	dir, _ := cmd.Flags().GetString("out")
	if dir == "" {
		return output.GenerateReport(report, format, cmd.OutOrStdout())
	}
	path, err := output.GenerateReportFile(report, format, dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}

// applyDefaults fills scenario fields the plan left empty from settings.
func applyDefaults(cfg *domain.Configuration) {
	for i := range cfg.Scenarios {
		if cfg.Scenarios[i].FireType == "" {
			cfg.Scenarios[i].FireType = domain.FireType(settings.Defaults.FireType)
		}
	}
}
