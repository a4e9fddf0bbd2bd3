package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Show retirement account contribution limits",
	RunE:  runLimits,
}

func init() {
	limitsCmd.Flags().Int("year", 0, fmt.Sprintf("Limits year %v (default current year, else latest)", domain.LimitYears()))
	limitsCmd.Flags().Int("age", 0, "Your age, to show the limit including catch-up")
	rootCmd.AddCommand(limitsCmd)
}

func runLimits(cmd *cobra.Command, _ []string) error {
	year, _ := cmd.Flags().GetInt("year")
	age, _ := cmd.Flags().GetInt("age")

	year, entries, err := calculation.ContributionLimitsFor(year)
	if err != nil {
		return err
	}
	_, total := domain.SelectMaxStrategy(entries)

	fmt.Fprintln(cmd.OutOrStdout(), output.RenderLimits(year, age, entries, total))
	return nil
}
