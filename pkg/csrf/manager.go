package csrf

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

const tokenBytes = 32

// Manager issues and lists CSRF tokens.
type Manager struct {
	store  Store
	config Config
	logger *slog.Logger
}

// NewManager creates a Manager over store. Panics on a nil store.
func NewManager(store Store, opts ...Option) *Manager {
	if store == nil {
		panic("csrf: store is required")
	}
	m := &Manager{
		store:  store,
		config: DefaultConfig(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue creates a new token for sessionID and stores it for the configured TTL.
func (m *Manager) Issue(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrEmptySessionID
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}

	if err := m.store.Add(ctx, sessionID, token, m.config.TokenTTL); err != nil {
		m.logger.ErrorContext(ctx, "failed to store csrf token",
			logger.Component("csrf"),
			logger.SessionID(sessionID),
			logger.Error(err),
		)
		return "", err
	}
	return token, nil
}

// Tokens returns the valid tokens of sessionID, oldest first.
func (m *Manager) Tokens(ctx context.Context, sessionID string) ([]string, error) {
	if sessionID == "" {
		return nil, nil
	}
	return m.store.Tokens(ctx, sessionID)
}

// Revoke invalidates one token, typically after a successful submission.
func (m *Manager) Revoke(ctx context.Context, sessionID, token string) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	return m.store.Remove(ctx, sessionID, token)
}

// TokenSource lists tokens for the validator's CSRFFrom predicate.
type TokenSource func(ctx context.Context) ([]string, error)

func (f TokenSource) Tokens(ctx context.Context) ([]string, error) {
	return f(ctx)
}

// Source returns the tokens of a fixed session.
func (m *Manager) Source(sessionID string) TokenSource {
	return func(ctx context.Context) ([]string, error) {
		return m.Tokens(ctx, sessionID)
	}
}

// ContextSource returns the tokens of the session found in the call's
// context (see Middleware).
func (m *Manager) ContextSource() TokenSource {
	return func(ctx context.Context) ([]string, error) {
		return m.Tokens(ctx, SessionIDFromContext(ctx))
	}
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
