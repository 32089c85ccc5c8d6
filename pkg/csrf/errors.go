package csrf

import "errors"

var (
	// ErrEmptySessionID is returned when a session id is required but missing.
	ErrEmptySessionID = errors.New("csrf.empty_session_id")

	// ErrEmptyToken is returned when storing an empty token.
	ErrEmptyToken = errors.New("csrf.empty_token")

	// ErrInvalidTTL is returned when storing a token with a non-positive TTL.
	ErrInvalidTTL = errors.New("csrf.invalid_ttl")

	// ErrTokenGeneration indicates the random source failed.
	ErrTokenGeneration = errors.New("csrf.token_generation_failed")

	// ErrStoreFailure wraps backend errors from the Redis and Postgres stores.
	ErrStoreFailure = errors.New("csrf.store_failure")

	// ErrSchemaMissing is joined with ErrStoreFailure when the csrf_tokens
	// table does not exist. Apply Migrations with pg.MigrateFS to create it.
	ErrSchemaMissing = errors.New("csrf.schema_missing")
)
