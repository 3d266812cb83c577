package config

import "github.com/sagarc03/foodle"

// Placeholder secrets used by the development variant when the
// corresponding environment variable is absent.
const (
	DevSecretKey    = "dev-secret-key-replace-if-you-want"
	DevPasswordSalt = "dev-salt-replace-if-you-want"
	DevJWTSecretKey = "dev-jwt-key-replace-if-you-want"
)

// variantOverride is what a variant changes relative to the base settings.
type variantOverride struct {
	debug    bool
	testing  bool
	defaults map[string]string
}

var variantOverrides = map[foodle.Variant]variantOverride{
	foodle.VariantBase:       {},
	foodle.VariantProduction: {debug: false, testing: false},
	foodle.VariantDevelopment: {
		debug: true,
		defaults: map[string]string{
			foodle.EnvSecretKey:    DevSecretKey,
			foodle.EnvPasswordSalt: DevPasswordSalt,
			foodle.EnvJWTSecretKey: DevJWTSecretKey,
		},
	},
}

// Resolve builds the settings for variant from env.
//
// Defaults only apply to keys that are absent; a key set to the empty
// string stays empty. Resolve never fails: missing secrets resolve to "",
// and an unknown variant resolves as VariantBase. Use ValidateSettings to
// reject incomplete production settings.
func Resolve(variant foodle.Variant, env Environment) foodle.Settings {
	if env == nil {
		env = MapEnv{}
	}

	override, ok := variantOverrides[variant]
	if !ok {
		variant = foodle.VariantBase
	}

	get := func(key string) string {
		if v, found := env.Lookup(key); found {
			return v
		}
		return override.defaults[key]
	}

	databaseURL, found := env.Lookup(foodle.EnvDatabaseURL)
	if !found {
		databaseURL = foodle.DefaultDatabaseURL
	}

	return foodle.Settings{
		Variant: variant,

		SecretKey: get(foodle.EnvSecretKey),

		DatabaseURI:        foodle.NormalizeDatabaseURL(databaseURL),
		TrackModifications: false,

		PasswordSalt:              get(foodle.EnvPasswordSalt),
		TokenAuthenticationHeader: foodle.TokenAuthenticationHeader,
		CSRFEnabled:               false,
		CSRFIgnoreUnauthEndpoints: true,

		JWTSecretKey:          get(foodle.EnvJWTSecretKey),
		JWTAccessTokenExpires: foodle.JWTAccessTokenExpires,

		GoogleClientID: get(foodle.EnvGoogleClientID),

		Debug:   override.debug,
		Testing: override.testing,
	}
}
