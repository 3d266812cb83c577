package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sagarc03/foodle"
)

// ApplicationName identifies foodle connections in pg_stat_activity.
const ApplicationName = "foodle"

// maxConns bounds the pool. Foodle only checks health, the application
// owns the real workload.
const maxConns = 2

type database struct {
	pool *pgxpool.Pool
}

// Connect creates a small connection pool for dsn. Both postgres:// and
// postgresql:// URLs are accepted. No connection is made until first use.
func Connect(ctx context.Context, dsn string) (*database, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: parse postgres dsn: %w", foodle.ErrInvalidInput, err)
	}

	cfg.MaxConns = maxConns
	if _, ok := cfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		cfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return &database{pool: pool}, nil
}

func (d *database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Version returns the server_version setting, e.g. "18.1".
func (d *database) Version(ctx context.Context) (string, error) {
	var version string
	if err := d.pool.QueryRow(ctx, `SHOW server_version`).Scan(&version); err != nil {
		return "", fmt.Errorf("query postgres version: %w", err)
	}
	return version, nil
}

// Close waits for in-flight queries and closes the pool.
func (d *database) Close() error {
	d.pool.Close()
	return nil
}
