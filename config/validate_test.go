package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/foodle"
	"github.com/sagarc03/foodle/config"
)

func TestValidateSettings_Production(t *testing.T) {
	t.Run("all secrets present", func(t *testing.T) {
		s := config.Resolve(foodle.VariantProduction, config.MapEnv{
			"SECRET_KEY":             "s",
			"SECURITY_PASSWORD_SALT": "salt",
			"JWT_SECRET_KEY":         "jwt",
		})

		assert.NoError(t, config.ValidateSettings(s))
	})

	t.Run("all secrets missing", func(t *testing.T) {
		s := config.Resolve(foodle.VariantProduction, config.MapEnv{})

		err := config.ValidateSettings(s)
		require.Error(t, err)
		assert.ErrorIs(t, err, foodle.ErrMissingSecret)
		assert.Contains(t, err.Error(), "SECRET_KEY, SECURITY_PASSWORD_SALT, JWT_SECRET_KEY")
		assert.Contains(t, err.Error(), "production")
	})

	t.Run("one secret missing", func(t *testing.T) {
		s := config.Resolve(foodle.VariantProduction, config.MapEnv{
			"SECRET_KEY":             "s",
			"SECURITY_PASSWORD_SALT": "salt",
		})

		err := config.ValidateSettings(s)
		require.ErrorIs(t, err, foodle.ErrMissingSecret)
		assert.Contains(t, err.Error(), "JWT_SECRET_KEY")
		assert.NotContains(t, err.Error(), "SECRET_KEY,")
	})

	t.Run("google client id is optional", func(t *testing.T) {
		s := config.Resolve(foodle.VariantProduction, config.MapEnv{
			"SECRET_KEY":             "s",
			"SECURITY_PASSWORD_SALT": "salt",
			"JWT_SECRET_KEY":         "jwt",
		})
		require.Empty(t, s.GoogleClientID)

		assert.NoError(t, config.ValidateSettings(s))
	})
}

func TestValidateSettings_OtherVariants(t *testing.T) {
	for _, variant := range []foodle.Variant{foodle.VariantBase, foodle.VariantDevelopment} {
		t.Run(variant.String(), func(t *testing.T) {
			s := config.Resolve(variant, config.MapEnv{
				"SECRET_KEY":             "",
				"SECURITY_PASSWORD_SALT": "",
				"JWT_SECRET_KEY":         "",
			})

			assert.NoError(t, config.ValidateSettings(s))
		})
	}
}
