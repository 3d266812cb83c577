// Package foodle holds the settings model for the Foodle backend.
//
// The web framework and its security extensions consume a flat bundle of
// named settings. This package defines that bundle (Settings), the
// deployment variants it can be resolved for (Variant), and the small
// amount of normalization applied to raw environment values.
//
// # Key Components
//
//   - Settings: immutable bundle of resolved setting values
//   - Variant: base, production or development
//   - NormalizeDatabaseURL: rewrites the legacy postgres:// scheme
//
// # Variants
//
//   - VariantBase: shared settings, no development defaults
//   - VariantProduction: debug and testing forced off, secrets never defaulted
//   - VariantDevelopment: debug on, placeholder secrets when unset
//
// # Example Usage
//
//	variant, err := foodle.ParseVariant("production")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings := config.Resolve(variant, config.OSEnv{})
//	fmt.Println(settings.DatabaseURI)
//
// See the config package for resolution and the database package for
// turning DatabaseURI into a live connection.
package foodle
