package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
)

var coastCmd = &cobra.Command{
	Use:   "coast",
	Short: "Find the savings that grow into your FIRE number with no more contributions",
	RunE:  runCoast,
}

func init() {
	coastCmd.Flags().String("age", "30", "Current age")
	coastCmd.Flags().String("retire-age", "65", "Target retirement age")
	coastCmd.Flags().String("savings", "50000", "Current savings")
	coastCmd.Flags().String("target", "1000000", "Target FIRE number")
	coastCmd.Flags().String("rate", "7", "Expected annual return in percent (default from settings)")
	rootCmd.AddCommand(coastCmd)
}

func runCoast(cmd *cobra.Command, _ []string) error {
	in := domain.CoastFireInput{
		CurrentAge:        amountFlag(cmd, "age"),
		RetirementAge:     amountFlag(cmd, "retire-age"),
		CurrentSavings:    amountFlag(cmd, "savings"),
		TargetFireNumber:  amountFlag(cmd, "target"),
		ReturnRatePercent: amountFlagOr(cmd, "rate", settings.Defaults.ReturnRatePercent),
	}
	logger.Debugf("coast inputs: %+v", in)

	res, err := calculation.CoastFire(in)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.RenderCoast(res, in.ReturnRatePercent))
	return nil
}
