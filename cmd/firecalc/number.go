package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
)

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Calculate your FIRE number from annual expenses",
	RunE:  runNumber,
}

func init() {
	numberCmd.Flags().String("expenses", "40000", "Annual expenses")
	numberCmd.Flags().StringP("type", "t", "", "FIRE type: traditional, coast, barista, lean or fat (default from settings)")
	numberCmd.Flags().String("multiplier", "", "Override the FIRE type multiplier")
	numberCmd.Flags().String("savings", "0", "Current savings, to show progress")
	rootCmd.AddCommand(numberCmd)
}

func runNumber(cmd *cobra.Command, _ []string) error {
	name := settings.Defaults.FireType
	if cmd.Flags().Changed("type") {
		name, _ = cmd.Flags().GetString("type")
	}
	fireType, err := domain.ParseFireType(name)
	if err != nil {
		return err
	}

	res := calculation.FireNumberWithMultiplier(amountFlag(cmd, "expenses"), fireType, amountFlag(cmd, "multiplier"))
	logger.Debugf("fire number: %+v", res)

	fmt.Fprintln(cmd.OutOrStdout(), output.RenderFireNumber(res, amountFlag(cmd, "savings")))
	return nil
}
