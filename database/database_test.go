package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/foodle"
	"github.com/sagarc03/foodle/database"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    database.Config
		wantErr error
	}{
		{
			name: "default sqlite url",
			uri:  "sqlite:///db.sqlite3",
			want: database.Config{Type: "sqlite", DSN: "db.sqlite3"},
		},
		{
			name: "relative sqlite path",
			uri:  "sqlite:///./instance/local.db",
			want: database.Config{Type: "sqlite", DSN: "./instance/local.db"},
		},
		{
			name: "absolute sqlite path",
			uri:  "sqlite:////var/lib/foodle/app.db",
			want: database.Config{Type: "sqlite", DSN: "/var/lib/foodle/app.db"},
		},
		{
			name: "in-memory sqlite",
			uri:  "sqlite://",
			want: database.Config{Type: "sqlite", DSN: ":memory:"},
		},
		{
			name: "explicit in-memory sqlite",
			uri:  "sqlite:///:memory:",
			want: database.Config{Type: "sqlite", DSN: ":memory:"},
		},
		{
			name: "postgresql url",
			uri:  "postgresql://u:p@db:5432/foodle?sslmode=require",
			want: database.Config{Type: "postgres", DSN: "postgresql://u:p@db:5432/foodle?sslmode=require"},
		},
		{
			name: "postgresql with driver suffix",
			uri:  "postgresql+psycopg2://u:p@db/foodle",
			want: database.Config{Type: "postgres", DSN: "postgresql://u:p@db/foodle"},
		},
		{
			name: "legacy postgres scheme",
			uri:  "postgres://u:p@db/foodle",
			want: database.Config{Type: "postgres", DSN: "postgresql://u:p@db/foodle"},
		},
		{
			name:    "postgres without host",
			uri:     "postgresql://",
			wantErr: foodle.ErrInvalidInput,
		},
		{
			name:    "missing scheme",
			uri:     "db.sqlite3",
			wantErr: foodle.ErrInvalidInput,
		},
		{
			name:    "empty",
			uri:     "",
			wantErr: foodle.ErrInvalidInput,
		},
		{
			name:    "unsupported dialect",
			uri:     "mysql://u:p@db/foodle",
			wantErr: foodle.ErrUnsupportedDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := database.ParseURL(tt.uri)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnect_SQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := database.Connect(ctx, database.Config{Type: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.NoError(t, db.Ping(ctx))

	version, err := db.Version(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, version)
}

func TestConnect_InvalidType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, err := database.Connect(ctx, database.Config{Type: "invalid", DSN: "whatever"})
	assert.Nil(t, db)
	assert.ErrorIs(t, err, foodle.ErrUnsupportedDatabase)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestConnect_EmptyType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := database.Connect(ctx, database.Config{DSN: ":memory:"})
	assert.ErrorIs(t, err, foodle.ErrUnsupportedDatabase)
}

func TestConnectURL_SQLiteFile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "foodle.db")

	db, err := database.ConnectURL(ctx, "sqlite:///"+path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	assert.NoError(t, db.Ping(ctx))
	assert.FileExists(t, path)
}

func TestConnectURL_InvalidURL(t *testing.T) {
	t.Parallel()

	db, err := database.ConnectURL(context.Background(), "not a url")
	assert.Nil(t, db)
	assert.ErrorIs(t, err, foodle.ErrInvalidInput)
}
