package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Explain the FIRE types",
	RunE:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
	t := output.Table{Headers: []string{"Type", "Name", "Multiplier", "Withdrawal"}}
	for _, ft := range domain.FireTypes() {
		t.Rows = append(t.Rows, []string{
			string(ft),
			ft.Label() + ": " + ft.Tagline(),
			output.FormatMultiplier(ft.Multiplier()),
			output.FormatPercentage(100 / ft.Multiplier()),
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, output.RenderTitle("Understanding FIRE"))
	fmt.Fprintln(w)
	fmt.Fprint(w, output.RenderTable(t))
	fmt.Fprintln(w)
	for _, ft := range domain.FireTypes() {
		fmt.Fprintf(w, "  %s: %s\n", ft.Label(), ft.Explanation())
	}
	return nil
}
