package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "foodle",
	Short:   "Resolve, check and serve Foodle backend settings",
	Long: `foodle resolves the Foodle backend settings from the environment
and an optional .env file, for one of three variants:

  base         shared settings only
  production   debug off, secrets must be provided
  development  debug on, placeholder secrets when unset

The variant is chosen with --variant or FOODLE_VARIANT.`,
	SilenceUsage:      true,
	PersistentPreRunE: resolveSettings,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./foodle.yaml)")
	rootCmd.PersistentFlags().String("variant", "", "settings variant: base, production, development (default: development, env: FOODLE_VARIANT, not read from .env)")
	rootCmd.PersistentFlags().StringSlice("env-file", nil, "env files to load, later files win (default: .env, env: FOODLE_ENV_FILES)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: FOODLE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringP("output", "o", "human", "output format: human, json, yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
