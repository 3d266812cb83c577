package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/sagarc03/foodle"
	"github.com/sagarc03/foodle/database/postgres"
	"github.com/sagarc03/foodle/database/sqlite"
)

const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Config holds the configuration for connecting to a database backend.
type Config struct {
	// Type specifies the database type: "sqlite" or "postgres"
	Type string `mapstructure:"type"`
	// DSN is the driver-level data source name
	DSN string `mapstructure:"dsn"`
	// MustExist makes Connect fail rather than create a missing SQLite
	// file. Postgres never creates databases, so it is ignored there.
	MustExist bool `mapstructure:"must_exist"`
}

// Database is an open connection to the application database.
type Database interface {
	Ping(ctx context.Context) error
	Version(ctx context.Context) (string, error)
	Close() error
}

// ParseURL converts a resolved SQLALCHEMY_DATABASE_URI into a driver Config.
//
// Accepted forms:
//   - sqlite:// and sqlite:///:memory: open an in-memory database
//   - sqlite:///relative/path.db opens relative/path.db
//   - sqlite:////absolute/path.db opens /absolute/path.db
//   - postgresql://..., postgresql+<driver>://... and postgres://...
func ParseURL(uri string) (Config, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok || scheme == "" {
		return Config{}, fmt.Errorf("parse database url: %w: missing scheme", foodle.ErrInvalidInput)
	}

	// SQLAlchemy allows "dialect+driver"; only the dialect matters here.
	dialect, _, _ := strings.Cut(strings.ToLower(scheme), "+")

	switch dialect {
	case "sqlite":
		path := strings.TrimPrefix(rest, "/")
		if path == "" {
			path = ":memory:"
		}
		return Config{Type: TypeSQLite, DSN: path}, nil
	case "postgresql", "postgres":
		if rest == "" {
			return Config{}, fmt.Errorf("parse database url: %w: missing host", foodle.ErrInvalidInput)
		}
		return Config{Type: TypePostgres, DSN: "postgresql://" + rest}, nil
	default:
		return Config{}, fmt.Errorf("parse database url: %w: %s", foodle.ErrUnsupportedDatabase, dialect)
	}
}

// Connect opens the configured database backend. The connection is not
// verified; call Ping before relying on it.
func Connect(ctx context.Context, cfg Config) (Database, error) {
	switch cfg.Type {
	case TypeSQLite:
		dsn := cfg.DSN
		if cfg.MustExist {
			dsn = sqlite.ExistingOnly(dsn)
		}
		db, err := sqlite.Connect(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return db, nil
	case TypePostgres:
		db, err := postgres.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w: unsupported database type: %s", foodle.ErrUnsupportedDatabase, cfg.Type)
	}
}

// ConnectURL parses uri and connects to it.
func ConnectURL(ctx context.Context, uri string) (Database, error) {
	cfg, err := ParseURL(uri)
	if err != nil {
		return nil, err
	}
	return Connect(ctx, cfg)
}
