package main

import (
	"context"
	"errors"

	"github.com/sagarc03/foodle"
)

// settingsKey is the context key for storing the resolved settings.
type settingsKey struct{}

// withSettings returns a new context with the settings stored.
func withSettings(ctx context.Context, s foodle.Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// settingsFromContext retrieves the settings from context.
// Returns an error if settings were not resolved.
func settingsFromContext(ctx context.Context) (foodle.Settings, error) {
	s, ok := ctx.Value(settingsKey{}).(foodle.Settings)
	if !ok {
		return foodle.Settings{}, errors.New("settings not found in context")
	}
	return s, nil
}
