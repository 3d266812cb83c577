package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment is a read-only view of environment variables.
type Environment interface {
	// Lookup returns the value of key and whether it was present.
	Lookup(key string) (string, bool)
}

// MapEnv is an Environment backed by a map.
type MapEnv map[string]string

func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// OSEnv reads the live process environment.
type OSEnv struct{}

func (OSEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Snapshot captures the process environment layered over the given .env
// files. Later files override earlier ones and the process environment
// overrides every file. Files that do not exist are skipped.
func Snapshot(envFiles ...string) (MapEnv, error) {
	env := MapEnv{}

	for _, path := range envFiles {
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				slog.Debug("env file not found, skipping", "file", path)
				continue
			}
			return nil, fmt.Errorf("read env file %s: %w", path, err)
		}

		slog.Debug("loaded env file", "file", path, "keys", len(values))
		for k, v := range values {
			env[k] = v
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}

	return env, nil
}
