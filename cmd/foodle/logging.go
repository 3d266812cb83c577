package main

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/sagarc03/foodle"
	"github.com/sagarc03/foodle/config"
)

// setupLogging installs the process logger on stderr, keeping stdout free
// for command output. Records from the log package are routed through it.
func setupLogging(cfg *config.Config) {
	variant := cfg.SelectedVariant()

	logger := slog.New(newLogHandler(os.Stderr, variant, parseLevel(cfg.Log.Level))).
		With("variant", variant.String())
	slog.SetDefault(logger)

	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(logger.Handler(), slog.LevelInfo).Writer())
}

// newLogHandler picks JSON for production, where logs are shipped, and
// colored text with source locations everywhere else.
func newLogHandler(w io.Writer, variant foodle.Variant, level slog.Level) slog.Handler {
	if variant != foodle.VariantProduction {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			AddSource:  true,
			TimeFormat: time.TimeOnly,
		})
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: renameTime,
	})
}

// renameTime writes the record time as "ts" in UTC.
func renameTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.TimeKey {
		return a
	}
	return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
