package pg_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/pg"
)

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	missing := &pgconn.PgError{Code: "42P01"}
	assert.True(t, pg.IsUndefinedTableError(missing))
	assert.True(t, pg.IsUndefinedTableError(fmt.Errorf("select: %w", missing)))
	assert.False(t, pg.IsUndefinedTableError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, pg.IsUndefinedTableError(errors.New("other")))
	assert.False(t, pg.IsUndefinedTableError(nil))
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)

	_, err = pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://%zz"})
	assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
}

func TestMigrate_MissingSources(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	log := logger.Discard()

	err := pg.Migrate(ctx, nil, pg.Config{}, log)
	assert.ErrorIs(t, err, pg.ErrMigrationPathNotProvided)

	err = pg.Migrate(ctx, nil, pg.Config{MigrationsPath: "testdata/does-not-exist"}, log)
	assert.ErrorIs(t, err, pg.ErrMigrationsDirNotFound)

	err = pg.MigrateFS(ctx, nil, nil, "migrations", pg.Config{}, log)
	assert.ErrorIs(t, err, pg.ErrMigrationPathNotProvided)

	err = pg.MigrateFS(ctx, nil, fstest.MapFS{}, "migrations", pg.Config{}, log)
	assert.ErrorIs(t, err, pg.ErrMigrationsDirNotFound)
}

func TestConnectAndMigrate_Live(t *testing.T) {
	dsn := os.Getenv("PG_CONN_URL")
	if dsn == "" {
		t.Skip("PG_CONN_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := pg.Config{
		ConnectionString: dsn,
		RetryAttempts:    3,
		RetryInterval:    100 * time.Millisecond,
		MigrationsTable:  "pg_test_migrations",
	}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, pg.Healthcheck(pool)(ctx))

	migrations := fstest.MapFS{
		"sql/00001_pg_test.sql": {Data: []byte(
			"-- +goose Up\nCREATE TABLE IF NOT EXISTS pg_test_items (id INT PRIMARY KEY);\n" +
				"-- +goose Down\nDROP TABLE IF EXISTS pg_test_items;\n",
		)},
	}
	require.NoError(t, pg.MigrateFS(ctx, pool, migrations, "sql", cfg, logger.Discard()))
	require.NoError(t, pg.MigrateFS(ctx, pool, migrations, "sql", cfg, logger.Discard()), "second run is a no-op")

	_, err = pool.Exec(ctx, "INSERT INTO pg_test_items (id) VALUES (1) ON CONFLICT DO NOTHING")
	require.NoError(t, err)

	var id int
	err = pool.QueryRow(ctx, "SELECT id FROM pg_test_items WHERE id = 2").Scan(&id)
	assert.True(t, pg.IsNotFoundError(err))
}
