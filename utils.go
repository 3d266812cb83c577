package foodle

import "strings"

const (
	legacyPostgresScheme = "postgres://"
	postgresScheme       = "postgresql://"
)

// NormalizeDatabaseURL rewrites a leading postgres:// scheme to postgresql://.
// Some hosting providers still hand out the legacy scheme, which the
// database driver layer rejects. Only the prefix is touched; every other
// input is returned unchanged.
func NormalizeDatabaseURL(uri string) string {
	if rest, ok := strings.CutPrefix(uri, legacyPostgresScheme); ok {
		return postgresScheme + rest
	}
	return uri
}
