package foodle

import (
	"fmt"
	"strings"
	"time"
)

// Setting keys as seen by the web framework.
const (
	KeySecretKey                 = "SECRET_KEY"
	KeyDatabaseURI               = "SQLALCHEMY_DATABASE_URI"
	KeyTrackModifications        = "SQLALCHEMY_TRACK_MODIFICATIONS"
	KeyPasswordSalt              = "SECURITY_PASSWORD_SALT"
	KeyTokenAuthenticationHeader = "SECURITY_TOKEN_AUTHENTICATION_HEADER"
	KeyCSRFEnabled               = "WTF_CSRF_ENABLED"
	KeyCSRFIgnoreUnauthEndpoints = "SECURITY_CSRF_IGNORE_UNAUTH_ENDPOINTS"
	KeyJWTSecretKey              = "JWT_SECRET_KEY"
	KeyJWTAccessTokenExpires     = "JWT_ACCESS_TOKEN_EXPIRES"
	KeyGoogleClientID            = "GOOGLE_CLIENT_ID"
	KeyDebug                     = "DEBUG"
	KeyTesting                   = "TESTING"
)

// Environment variables read during resolution.
const (
	EnvSecretKey      = "SECRET_KEY"
	EnvDatabaseURL    = "DATABASE_URL"
	EnvPasswordSalt   = "SECURITY_PASSWORD_SALT"
	EnvJWTSecretKey   = "JWT_SECRET_KEY"
	EnvGoogleClientID = "GOOGLE_CLIENT_ID"
)

// Fixed settings. These are not read from the environment.
const (
	DefaultDatabaseURL        = "sqlite:///db.sqlite3"
	TokenAuthenticationHeader = "Authentication-Token"
	JWTAccessTokenExpires     = 86400 // 24 hours in seconds
)

const redactedValue = "********"

// Variant names one of the configuration bundles. Exactly one is active
// per process.
type Variant string

const (
	VariantBase        Variant = "base"
	VariantProduction  Variant = "production"
	VariantDevelopment Variant = "development"
)

var variantAliases = map[string]Variant{
	"base":             VariantBase,
	"production":       VariantProduction,
	"prod":             VariantProduction,
	"development":      VariantDevelopment,
	"dev":              VariantDevelopment,
	"local":            VariantDevelopment,
	"localdevelopment": VariantDevelopment,
}

func (v Variant) IsValid() bool {
	switch v {
	case VariantBase, VariantProduction, VariantDevelopment:
		return true
	default:
		return false
	}
}

func (v Variant) String() string {
	return string(v)
}

// ParseVariant accepts a variant name or one of its aliases, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	v, ok := variantAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: invalid variant: %s (valid variants: base, production, development)", ErrInvalidInput, s)
	}
	return v, nil
}

// Settings is the resolved configuration bundle for one variant.
// It only holds comparable values so two bundles can be compared with ==.
type Settings struct {
	Variant Variant `json:"variant" yaml:"variant"`

	SecretKey string `json:"SECRET_KEY" yaml:"SECRET_KEY" validate:"required_if=Variant production"`

	DatabaseURI        string `json:"SQLALCHEMY_DATABASE_URI" yaml:"SQLALCHEMY_DATABASE_URI"`
	TrackModifications bool   `json:"SQLALCHEMY_TRACK_MODIFICATIONS" yaml:"SQLALCHEMY_TRACK_MODIFICATIONS"`

	PasswordSalt              string `json:"SECURITY_PASSWORD_SALT" yaml:"SECURITY_PASSWORD_SALT" validate:"required_if=Variant production"`
	TokenAuthenticationHeader string `json:"SECURITY_TOKEN_AUTHENTICATION_HEADER" yaml:"SECURITY_TOKEN_AUTHENTICATION_HEADER"`
	CSRFEnabled               bool   `json:"WTF_CSRF_ENABLED" yaml:"WTF_CSRF_ENABLED"`
	CSRFIgnoreUnauthEndpoints bool   `json:"SECURITY_CSRF_IGNORE_UNAUTH_ENDPOINTS" yaml:"SECURITY_CSRF_IGNORE_UNAUTH_ENDPOINTS"`

	JWTSecretKey          string `json:"JWT_SECRET_KEY" yaml:"JWT_SECRET_KEY" validate:"required_if=Variant production"`
	JWTAccessTokenExpires int    `json:"JWT_ACCESS_TOKEN_EXPIRES" yaml:"JWT_ACCESS_TOKEN_EXPIRES"`

	GoogleClientID string `json:"GOOGLE_CLIENT_ID" yaml:"GOOGLE_CLIENT_ID"`

	Debug   bool `json:"DEBUG" yaml:"DEBUG"`
	Testing bool `json:"TESTING" yaml:"TESTING"`
}

// TokenTTL returns the access token lifetime.
func (s Settings) TokenTTL() time.Duration {
	return time.Duration(s.JWTAccessTokenExpires) * time.Second
}

// Map returns the settings keyed by setting name.
func (s Settings) Map() map[string]any {
	return map[string]any{
		KeySecretKey:                 s.SecretKey,
		KeyDatabaseURI:               s.DatabaseURI,
		KeyTrackModifications:        s.TrackModifications,
		KeyPasswordSalt:              s.PasswordSalt,
		KeyTokenAuthenticationHeader: s.TokenAuthenticationHeader,
		KeyCSRFEnabled:               s.CSRFEnabled,
		KeyCSRFIgnoreUnauthEndpoints: s.CSRFIgnoreUnauthEndpoints,
		KeyJWTSecretKey:              s.JWTSecretKey,
		KeyJWTAccessTokenExpires:     s.JWTAccessTokenExpires,
		KeyGoogleClientID:            s.GoogleClientID,
		KeyDebug:                     s.Debug,
		KeyTesting:                   s.Testing,
	}
}

// Redacted returns a copy with secret values masked. Empty secrets stay
// empty so that missing values are still visible.
func (s Settings) Redacted() Settings {
	s.SecretKey = redact(s.SecretKey)
	s.PasswordSalt = redact(s.PasswordSalt)
	s.JWTSecretKey = redact(s.JWTSecretKey)
	s.DatabaseURI = RedactDatabaseURL(s.DatabaseURI)
	return s
}

// SecretKeys lists the setting keys that carry secrets.
func SecretKeys() []string {
	return []string{KeySecretKey, KeyPasswordSalt, KeyJWTSecretKey}
}

func redact(v string) string {
	if v == "" {
		return ""
	}
	return redactedValue
}

// RedactDatabaseURL masks the password of a connection URL, both in the
// userinfo and in a password query parameter. Everything else is kept
// byte for byte.
func RedactDatabaseURL(uri string) string {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return uri
	}

	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		end = len(rest)
	}
	authority, tail := rest[:end], rest[end:]

	if at := strings.LastIndex(authority, "@"); at >= 0 {
		user, _, hasPassword := strings.Cut(authority[:at], ":")
		if hasPassword {
			authority = user + ":" + redactedValue + authority[at:]
		}
	}

	return scheme + "://" + authority + redactQueryPassword(tail)
}

// redactQueryPassword masks password=... in the query part of tail, the
// URL after its authority.
func redactQueryPassword(tail string) string {
	q := strings.IndexByte(tail, '?')
	if q < 0 {
		return tail
	}
	query, fragment := tail[q+1:], ""
	if h := strings.IndexByte(query, '#'); h >= 0 {
		query, fragment = query[:h], query[h:]
	}

	params := strings.Split(query, "&")
	for i, param := range params {
		key, value, found := strings.Cut(param, "=")
		if found && value != "" && strings.EqualFold(key, "password") {
			params[i] = key + "=" + redactedValue
		}
	}

	return tail[:q+1] + strings.Join(params, "&") + fragment
}
