package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sagarc03/foodle"
)

var showCmd = &cobra.Command{
	Use:   "show [KEY]",
	Short: "Print the resolved settings",
	Long: `Print the settings resolved for the selected variant.

With a KEY argument only that setting's value is printed, which is handy
in scripts:

  foodle show SQLALCHEMY_DATABASE_URI

Secrets are masked by default; use --show-secrets to reveal them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var showSecrets bool

func init() {
	showCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "show secret values")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	settings, err := settingsFromContext(cmd.Context())
	if err != nil {
		return err
	}

	formatter, err := getFormatter(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		if err := showKey(cmd, settings, args[0]); err != nil {
			_ = formatter.FormatError(cmd.ErrOrStderr(), err)
			return err
		}
		return nil
	}

	return formatter.FormatSettings(cmd.OutOrStdout(), settings, showSecrets)
}

func showKey(cmd *cobra.Command, settings foodle.Settings, key string) error {
	if !showSecrets {
		settings = settings.Redacted()
	}

	value, ok := settings.Map()[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting: %s", foodle.ErrInvalidInput, key)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
