package csrf

import (
	"context"
	"time"
)

// Store persists CSRF tokens per session.
type Store interface {
	// Add stores token for sessionID until ttl elapses.
	Add(ctx context.Context, sessionID, token string, ttl time.Duration) error

	// Tokens returns the unexpired tokens of sessionID, oldest first.
	// An unknown session yields an empty list.
	Tokens(ctx context.Context, sessionID string) ([]string, error)

	// Remove deletes one token. Removing an unknown token is not an error.
	Remove(ctx context.Context, sessionID, token string) error
}

func validateAdd(sessionID, token string, ttl time.Duration) error {
	switch {
	case sessionID == "":
		return ErrEmptySessionID
	case token == "":
		return ErrEmptyToken
	case ttl <= 0:
		return ErrInvalidTTL
	}
	return nil
}
