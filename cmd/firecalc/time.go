package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
)

var timeCmd = &cobra.Command{
	Use:     "time",
	Aliases: []string{"projection"},
	Short:   "Estimate the time to FIRE and project your portfolio year by year",
	RunE:    runTime,
}

func init() {
	timeCmd.Flags().String("savings", "100000", "Current savings")
	timeCmd.Flags().String("monthly", "3000", "Monthly contribution")
	timeCmd.Flags().String("target", "1000000", "Target FIRE number")
	timeCmd.Flags().String("rate", "7", "Expected annual return in percent (default from settings)")
	timeCmd.Flags().Bool("chart", false, "Draw the projection as a bar chart")
	rootCmd.AddCommand(timeCmd)
}

func runTime(cmd *cobra.Command, _ []string) error {
	in := domain.TimeToFireInput{
		CurrentSavings:      amountFlag(cmd, "savings"),
		MonthlyContribution: amountFlag(cmd, "monthly"),
		TargetFireNumber:    amountFlag(cmd, "target"),
		ReturnRatePercent:   amountFlagOr(cmd, "rate", settings.Defaults.ReturnRatePercent),
	}
	logger.Debugf("time to FIRE inputs: %+v", in)

	res, err := calculation.TimeToFire(in)
	if err != nil {
		return err
	}
	series, err := calculation.GenerateProjection(domain.ProjectionInput{
		CurrentSavings:      in.CurrentSavings,
		MonthlyContribution: in.MonthlyContribution,
		FireTarget:          in.TargetFireNumber,
		ReturnRatePercent:   in.ReturnRatePercent,
	})
	if err != nil {
		return err
	}
	if !res.Reachable() {
		logger.Warnf("time to FIRE is not a positive finite number of years: %v", res.YearsToFire)
	}

	chart, _ := cmd.Flags().GetBool("chart")
	fmt.Fprintln(cmd.OutOrStdout(), output.RenderTimeToFire(res, series, chart))
	return nil
}
