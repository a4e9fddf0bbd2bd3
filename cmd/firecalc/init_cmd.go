package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/output"
)

const defaultPlanFile = "fire_plan.yaml"

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write an example plan to edit",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := defaultPlanFile
	if len(args) == 1 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := output.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Example plan written to %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Run it with: firecalc plan %s\n", path)
	return nil
}
