package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagarc03/foodle"
	"github.com/sagarc03/foodle/config"
	"github.com/sagarc03/foodle/database"
	"github.com/sagarc03/foodle/output"
)

var errChecksFailed = errors.New("checks failed")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate settings and test the database connection",
	Long: `Validate the resolved settings the way the application does at
startup, then connect to the configured database.

In the production variant every secret must be set. The command exits
with a non-zero status when any check fails.`,
	RunE: runCheck,
}

var checkTimeout time.Duration

func init() {
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 5*time.Second, "database connection timeout")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := settingsFromContext(cmd.Context())
	if err != nil {
		return err
	}

	formatter, err := getFormatter(cmd)
	if err != nil {
		return err
	}

	report := buildCheckReport(cmd.Context(), settings, checkTimeout)

	if err := formatter.FormatCheck(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if !report.OK() {
		return errChecksFailed
	}
	return nil
}

func buildCheckReport(ctx context.Context, settings foodle.Settings, timeout time.Duration) *output.CheckReport {
	report := &output.CheckReport{Variant: settings.Variant}

	report.Add("settings", config.ValidateSettings(settings), "required secrets present")

	dbCfg, err := database.ParseURL(settings.DatabaseURI)
	if err != nil {
		report.Add("database", err, "")
	} else {
		// A diagnostic must not leave a new SQLite file behind.
		dbCfg.MustExist = true
		version, err := pingDatabase(ctx, dbCfg, timeout)
		report.Add("database", err, fmt.Sprintf("%s %s", dbCfg.Type, version))
	}

	for _, warning := range settingsWarnings(settings, dbCfg) {
		report.Warn(warning)
	}

	return report
}

func pingDatabase(ctx context.Context, cfg database.Config, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return "", err
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(ctx); err != nil {
		return "", fmt.Errorf("ping database: %w", err)
	}

	return db.Version(ctx)
}

func settingsWarnings(s foodle.Settings, dbCfg database.Config) []string {
	var warnings []string

	if s.Variant == foodle.VariantProduction && dbCfg.Type == database.TypeSQLite {
		warnings = append(warnings, "production is using a local SQLite database")
	}

	if s.GoogleClientID == "" {
		warnings = append(warnings, foodle.EnvGoogleClientID+" is not set; Google sign-in is disabled")
	}

	placeholders := map[string]string{
		foodle.KeySecretKey:    config.DevSecretKey,
		foodle.KeyPasswordSalt: config.DevPasswordSalt,
		foodle.KeyJWTSecretKey: config.DevJWTSecretKey,
	}
	values := s.Map()
	for _, key := range foodle.SecretKeys() {
		if values[key] == placeholders[key] {
			warnings = append(warnings, key+" uses the development placeholder")
		}
	}

	return warnings
}
