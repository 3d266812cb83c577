package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sagarc03/foodle"
	"github.com/sagarc03/foodle/database"
)

const secretBytes = 32

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Manage .env files",
	// Skip settings resolution: the .env file may not exist yet.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		_, err := loadConfig(cmd)
		return err
	},
}

var envInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a .env file",
	Long: `Create a .env file for local or production use.

Prompts for DATABASE_URL and GOOGLE_CLIENT_ID. SECRET_KEY,
SECURITY_PASSWORD_SALT and JWT_SECRET_KEY keep their current values when
the file already has them and are generated otherwise.`,
	Args: cobra.NoArgs,
	RunE: runEnvInit,
}

var (
	envPath  string
	envForce bool
)

func init() {
	envInitCmd.Flags().StringVar(&envPath, "path", ".env", "path of the .env file to write")
	envInitCmd.Flags().BoolVar(&envForce, "force", false, "overwrite an existing file without asking")

	envCmd.AddCommand(envInitCmd)
	rootCmd.AddCommand(envCmd)
}

func runEnvInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	existing, err := readEnvFile(envPath)
	if err != nil {
		return err
	}

	if existing != nil && !envForce {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("%s exists. Update it", envPath),
			IsConfirm: true,
		}
		if _, promptErr := prompt.Run(); promptErr != nil {
			_, _ = fmt.Fprintln(out, "Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	databaseDefault := existing[foodle.EnvDatabaseURL]
	if databaseDefault == "" {
		databaseDefault = foodle.DefaultDatabaseURL
	}

	databasePrompt := promptui.Prompt{
		Label:    "Database URL",
		Default:  databaseDefault,
		Validate: validateDatabaseURL,
	}
	databaseURL, err := databasePrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	clientIDPrompt := promptui.Prompt{
		Label:   "Google client ID (optional)",
		Default: existing[foodle.EnvGoogleClientID],
	}
	clientID, err := clientIDPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	values, generated, err := buildEnv(existing, databaseURL, clientID, generateSecret)
	if err != nil {
		return err
	}

	if err := writeEnvFile(envPath, values); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Wrote %s.\n", envPath)
	for _, key := range generated {
		_, _ = fmt.Fprintf(out, "Generated %s.\n", key)
	}
	return nil
}

// readEnvFile returns nil when path does not exist.
func readEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

func writeEnvFile(path string, values map[string]string) error {
	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode env file: %w", err)
	}

	if err := os.WriteFile(path, []byte(content+"\n"), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// buildEnv merges the prompted values into existing. Unrelated keys are
// kept. Secrets missing from existing are generated and their keys are
// returned in generated.
func buildEnv(
	existing map[string]string,
	databaseURL, clientID string,
	newSecret func() (string, error),
) (values map[string]string, generated []string, err error) {
	values = make(map[string]string, len(existing)+5)
	for k, v := range existing {
		values[k] = v
	}

	values[foodle.EnvDatabaseURL] = databaseURL
	if clientID != "" {
		values[foodle.EnvGoogleClientID] = clientID
	} else {
		delete(values, foodle.EnvGoogleClientID)
	}

	for _, key := range []string{foodle.EnvSecretKey, foodle.EnvPasswordSalt, foodle.EnvJWTSecretKey} {
		if values[key] != "" {
			continue
		}
		secret, err := newSecret()
		if err != nil {
			return nil, nil, fmt.Errorf("generate %s: %w", key, err)
		}
		values[key] = secret
		generated = append(generated, key)
	}

	return values, generated, nil
}

func generateSecret() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func validateDatabaseURL(input string) error {
	if input == "" {
		return errors.New("database URL is required")
	}
	_, err := database.ParseURL(foodle.NormalizeDatabaseURL(input))
	return err
}

func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
