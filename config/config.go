package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sagarc03/foodle"
	foodlehttp "github.com/sagarc03/foodle/http"
)

type configKey struct{}

// WithContext attaches cfg to ctx for commands further down the chain.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the Config attached by WithContext.
func FromContext(ctx context.Context) (*Config, error) {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok && cfg != nil {
		return cfg, nil
	}
	return nil, errors.New("config: no runtime config on context")
}

// Config holds process-level options for the foodle binary. Application
// settings are resolved separately by Resolve.
type Config struct {
	Variant  string                `mapstructure:"variant" validate:"required,variant"`
	EnvFiles []string              `mapstructure:"env_files"`
	Server   ServerConfig          `mapstructure:"server"`
	CORS     foodlehttp.CORSConfig `mapstructure:"cors"`
	Log      LogConfig             `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port            int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"min=1"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SelectedVariant returns the variant chosen for this process.
func (c *Config) SelectedVariant() foodle.Variant {
	v, err := foodle.ParseVariant(c.Variant)
	if err != nil {
		return foodle.VariantBase
	}
	return v
}

// flagKeys maps CLI flag names to config keys where they differ.
var flagKeys = map[string]string{
	"env-file":  "env_files",
	"log-level": "log.level",
	"port":      "server.port",
}

// bindFlags binds only the flags the user set, so unset flags never mask
// values from files or the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			key = f.Name
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil && err == nil {
			err = fmt.Errorf("bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

var defaults = map[string]any{
	"variant":   foodle.VariantDevelopment.String(),
	"env_files": []string{".env"},

	"server.port":             5000,
	"server.shutdown_timeout": 30, // seconds

	"cors.enabled":           false,
	"cors.allowed_origins":   []string{},
	"cors.allowed_methods":   []string{"GET", "OPTIONS"},
	"cors.allowed_headers":   []string{"Content-Type"},
	"cors.exposed_headers":   []string{},
	"cors.allow_credentials": false,
	"cors.max_age":           300,

	"log.level": "info",
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("variant", func(fl validator.FieldLevel) bool {
		_, err := foodle.ParseVariant(fl.Field().String())
		return err == nil
	})
	return validate
}

// readConfigFiles reads the first file and merges the rest over it. With
// no files it looks for an optional foodle.yaml in the working directory.
// Unreadable files are logged and skipped.
func readConfigFiles(v *viper.Viper, files []string) {
	if len(files) == 0 {
		v.SetConfigName("foodle")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			slog.Warn("error reading config file", "err", err)
		}
		return
	}

	for i, file := range files {
		v.SetConfigFile(file)

		read := v.MergeInConfig
		if i == 0 {
			read = v.ReadInConfig
		}
		if err := read(); err != nil {
			slog.Warn("error reading config file", "file", file, "err", err)
		}
	}
}

// Load builds the runtime Config. Precedence, highest first: flags set on
// the command line, FOODLE_* environment variables, config files (later
// files win), defaults. flags may be nil. The returned Variant is always
// the canonical variant name.
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	readConfigFiles(v, configFiles)

	v.SetEnvPrefix("FOODLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := newValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	cfg.Variant = cfg.SelectedVariant().String()

	return &cfg, nil
}
