package csrf

import (
	"context"
	"embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/formcheck/pkg/pg"
)

// Migrations holds the goose migrations creating the csrf_tokens table.
// Pass it to pg.MigrateFS together with MigrationsDir.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations holding the SQL files.
const MigrationsDir = "migrations"

// DB is the subset of *pgxpool.Pool used by PostgresStore.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	upsertTokenQuery = `
		INSERT INTO csrf_tokens (session_id, token, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, token) DO UPDATE SET expires_at = EXCLUDED.expires_at`

	selectTokensQuery = `
		SELECT token FROM csrf_tokens
		WHERE session_id = $1 AND expires_at > $2
		ORDER BY created_at, token`

	deleteTokenQuery = `DELETE FROM csrf_tokens WHERE session_id = $1 AND token = $2`

	deleteExpiredQuery = `DELETE FROM csrf_tokens WHERE expires_at <= $1`
)

// PostgresStore implements Store on the csrf_tokens table.
type PostgresStore struct {
	db  DB
	now func() time.Time
}

// NewPostgresStore creates a PostgresStore. Panics on a nil db.
func NewPostgresStore(db DB) *PostgresStore {
	if db == nil {
		panic("csrf: postgres connection is required")
	}
	return &PostgresStore{db: db, now: time.Now}
}

func (s *PostgresStore) Add(ctx context.Context, sessionID, token string, ttl time.Duration) error {
	if err := validateAdd(sessionID, token, ttl); err != nil {
		return err
	}

	now := s.now().UTC()
	if _, err := s.db.Exec(ctx, upsertTokenQuery, sessionID, token, now, now.Add(ttl)); err != nil {
		return storeError(err)
	}
	return nil
}

func (s *PostgresStore) Tokens(ctx context.Context, sessionID string) ([]string, error) {
	if sessionID == "" {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, selectTokensQuery, sessionID, s.now().UTC())
	if err != nil {
		return nil, storeError(err)
	}

	tokens, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, storeError(err)
	}
	return tokens, nil
}

func (s *PostgresStore) Remove(ctx context.Context, sessionID, token string) error {
	if _, err := s.db.Exec(ctx, deleteTokenQuery, sessionID, token); err != nil {
		return storeError(err)
	}
	return nil
}

// DeleteExpired removes expired rows and returns how many were deleted.
func (s *PostgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, deleteExpiredQuery, s.now().UTC())
	if err != nil {
		return 0, storeError(err)
	}
	return tag.RowsAffected(), nil
}

// storeError wraps a database error. A missing table usually means the
// migrations were never applied, so it is reported as ErrSchemaMissing.
func storeError(err error) error {
	if pg.IsUndefinedTableError(err) {
		return errors.Join(ErrStoreFailure, ErrSchemaMissing, err)
	}
	return errors.Join(ErrStoreFailure, err)
}
