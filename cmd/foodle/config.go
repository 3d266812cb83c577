package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sagarc03/foodle/config"
	"github.com/sagarc03/foodle/output"
)

// loadConfig loads process options, sets up logging and stores the config
// on the command context.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var configFiles []string
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		configFiles = []string{configFile}
	}

	cfg, err := config.Load(configFiles, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	setupLogging(cfg)

	cmd.SetContext(config.WithContext(contextOf(cmd), cfg))
	return cfg, nil
}

// resolveSettings is the root PersistentPreRunE. The settings are
// resolved exactly once per process and carried on the command context.
func resolveSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	env, err := config.Snapshot(cfg.EnvFiles...)
	if err != nil {
		return fmt.Errorf("load environment: %w", err)
	}

	settings := config.Resolve(cfg.SelectedVariant(), env)
	slog.Debug("resolved settings", "variant", settings.Variant, "env_files", cfg.EnvFiles)

	cmd.SetContext(withSettings(cmd.Context(), settings))
	return nil
}

func getFormatter(cmd *cobra.Command) (output.Formatter, error) {
	format, _ := cmd.Flags().GetString("output")
	return output.NewFormatter(format)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
