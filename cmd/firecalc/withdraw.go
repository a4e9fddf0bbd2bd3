package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/output"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Compare safe withdrawal rates for a portfolio",
	RunE:  runWithdraw,
}

func init() {
	withdrawCmd.Flags().String("portfolio", "1000000", "Portfolio value")
	withdrawCmd.Flags().String("rate", "4", "Withdrawal rate in percent (default from settings)")
	rootCmd.AddCommand(withdrawCmd)
}

func runWithdraw(cmd *cobra.Command, _ []string) error {
	portfolio := amountFlag(cmd, "portfolio")
	rate := amountFlagOr(cmd, "rate", settings.Defaults.WithdrawalRatePercent)
	logger.Debugf("withdrawal inputs: portfolio=%.2f rate=%.2f", portfolio, rate)

	chosen := calculation.CustomWithdrawal(portfolio, rate)
	fmt.Fprintln(cmd.OutOrStdout(), output.RenderWithdrawals(chosen, calculation.WithdrawalScenarios(portfolio)))
	return nil
}
