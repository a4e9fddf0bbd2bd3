package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the settings file",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite existing settings")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	path := settingsPath()
	status := "not found, using defaults"
	if config.SettingsExist(path) {
		status = "loaded"
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, output.RenderTitle("Settings"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.RenderKeyValue("File", path+" ("+status+")"))
	fmt.Fprintln(w, output.RenderKeyValue("FIRE type", settings.Defaults.FireType))
	fmt.Fprintln(w, output.RenderKeyValue("Return rate", output.FormatPercentage(settings.Defaults.ReturnRatePercent)))
	fmt.Fprintln(w, output.RenderKeyValue("Withdrawal rate", output.FormatPercentage(settings.Defaults.WithdrawalRatePercent)))
	fmt.Fprintln(w, output.RenderKeyValue("Report format", settings.Output.Format))
	fmt.Fprintln(w, output.RenderKeyValue("Currency", output.CurrencyCode()))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := settingsPath()
	force, _ := cmd.Flags().GetBool("force")
	if config.SettingsExist(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.SaveSettings(path, config.DefaultSettings()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", path)
	return nil
}
