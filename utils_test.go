package foodle_test

import (
	"strings"
	"testing"

	"github.com/sagarc03/foodle"
)

func TestNormalizeDatabaseURL(t *testing.T) {
	tt := []struct {
		Name string
		In   string
		Want string
	}{
		{Name: "legacy scheme", In: "postgres://u:p@host:5432/db", Want: "postgresql://u:p@host:5432/db"},
		{Name: "legacy scheme only", In: "postgres://", Want: "postgresql://"},
		{Name: "current scheme untouched", In: "postgresql://u:p@host/db", Want: "postgresql://u:p@host/db"},
		{Name: "sqlite untouched", In: "sqlite:///db.sqlite3", Want: "sqlite:///db.sqlite3"},
		{Name: "empty untouched", In: "", Want: ""},
		{Name: "uppercase scheme untouched", In: "POSTGRES://host/db", Want: "POSTGRES://host/db"},
		{Name: "prefix without slashes untouched", In: "postgres:host/db", Want: "postgres:host/db"},
		{Name: "only first occurrence", In: "postgres://host/postgres://x", Want: "postgresql://host/postgres://x"},
		{Name: "leading whitespace untouched", In: " postgres://host/db", Want: " postgres://host/db"},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			got := foodle.NormalizeDatabaseURL(tc.In)
			if got != tc.Want {
				t.Fatalf("NormalizeDatabaseURL(%q) = %q, want %q", tc.In, got, tc.Want)
			}
		})
	}
}

func TestNormalizeDatabaseURL_SuffixPreserved(t *testing.T) {
	suffixes := []string{
		"",
		"localhost/db",
		"user:pa%20ss@host:5432/db?sslmode=require",
		"h/\x00\xff",
		strings.Repeat("x", 4096),
	}

	for _, suffix := range suffixes {
		got := foodle.NormalizeDatabaseURL("postgres://" + suffix)
		rest, ok := strings.CutPrefix(got, "postgresql://")
		if !ok {
			t.Fatalf("expected postgresql:// prefix, got %q", got)
		}
		if rest != suffix {
			t.Fatalf("suffix changed: got %q, want %q", rest, suffix)
		}
	}
}
