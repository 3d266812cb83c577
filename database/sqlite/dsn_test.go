package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithBusyTimeout(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{MemoryDSN, MemoryDSN},
		{"db.sqlite3", "db.sqlite3?_pragma=busy_timeout(5000)"},
		{"/var/lib/foodle/app.db?_pragma=foreign_keys(1)", "/var/lib/foodle/app.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"},
		{"app.db?_pragma=busy_timeout(100)", "app.db?_pragma=busy_timeout(100)"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, withBusyTimeout(tt.dsn))
		})
	}
}

func TestExistingOnly(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{MemoryDSN, MemoryDSN},
		{"db.sqlite3", "file:db.sqlite3?mode=rw"},
		{"/var/lib/foodle/app.db", "file:/var/lib/foodle/app.db?mode=rw"},
		{"odd#name%.db", "file:odd%23name%25.db?mode=rw"},
		{"app.db?_pragma=foreign_keys(1)", "file:app.db?mode=rw&_pragma=foreign_keys(1)"},
		{"file:app.db?mode=ro", "file:app.db?mode=ro"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, ExistingOnly(tt.dsn))
		})
	}
}
