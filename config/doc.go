// Package config resolves Foodle settings from the environment.
//
// Two kinds of configuration live here. Application settings (secrets,
// database URL, token options) are produced by Resolve from an
// Environment snapshot and handed to the web layer. Process options for
// the foodle binary (which variant to run, log level, HTTP port, CORS)
// are loaded by Load with viper.
//
// # Resolving Settings
//
//	env, err := config.Snapshot(".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	settings := config.Resolve(foodle.VariantProduction, env)
//	if err := config.ValidateSettings(settings); err != nil {
//	    log.Fatal(err) // refuse to start without secrets
//	}
//
// Snapshot layers the process environment over .env files, so a variable
// exported in the shell always wins over the file. Resolve is pure over
// the snapshot: the same snapshot always yields the same Settings.
//
// # Variant Defaults
//
// The development variant substitutes placeholder values for SECRET_KEY,
// SECURITY_PASSWORD_SALT and JWT_SECRET_KEY when they are absent. The base
// and production variants leave them empty.
//
// # Process Options
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (FOODLE_ prefix)
//  4. CLI flags
//
// All keys map to environment variables with the FOODLE_ prefix:
//   - variant → FOODLE_VARIANT
//   - server.port → FOODLE_SERVER_PORT
//   - log.level → FOODLE_LOG_LEVEL
//
// Process options are read before any .env file, because env_files itself
// is one of them. FOODLE_* variables written in a .env file are therefore
// ignored; set them in the shell, a config file or with flags.
package config
