package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/foodle"
	"github.com/sagarc03/foodle/database/postgres"
)

func TestConnect(t *testing.T) {
	dsn := getSharedTestDSN(t)
	ctx := context.Background()

	db, err := postgres.Connect(ctx, dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	assert.NoError(t, db.Ping(ctx), "ping should succeed after connect")
}

func TestConnect_BothSchemes(t *testing.T) {
	dsn := getSharedTestDSN(t)
	ctx := context.Background()

	for _, scheme := range []string{"postgres", "postgresql"} {
		t.Run(scheme, func(t *testing.T) {
			db, err := postgres.Connect(ctx, withScheme(dsn, scheme))
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			assert.NoError(t, db.Ping(ctx))
		})
	}
}

func TestDatabase_Version(t *testing.T) {
	dsn := getSharedTestDSN(t)
	ctx := context.Background()

	db, err := postgres.Connect(ctx, dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	version, err := db.Version(ctx)
	require.NoError(t, err)
	assert.Regexp(t, `^18`, version)
}

func TestConnect_InvalidDSN(t *testing.T) {
	_, err := postgres.Connect(context.Background(), "postgresql://u:p@host:notaport/db")
	require.ErrorIs(t, err, foodle.ErrInvalidInput)
	assert.Contains(t, err.Error(), "parse postgres dsn")
}

func TestDatabase_PingUnreachable(t *testing.T) {
	ctx := context.Background()

	// Port 1 on localhost is never a postgres server.
	db, err := postgres.Connect(ctx, "postgresql://u:p@127.0.0.1:1/db?connect_timeout=1")
	require.NoError(t, err, "pool creation is lazy")
	defer func() { _ = db.Close() }()

	assert.Error(t, db.Ping(ctx))
}
