package csrf

import (
	"log/slog"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

// WithConfig replaces the whole configuration. Zero fields keep defaults.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		if cfg.TokenTTL > 0 {
			m.config.TokenTTL = cfg.TokenTTL
		}
		if cfg.CookieName != "" {
			m.config.CookieName = cfg.CookieName
		}
		m.config.SecureCookie = cfg.SecureCookie
		m.config.CleanupInterval = cfg.CleanupInterval
		if cfg.Store != "" {
			m.config.Store = cfg.Store
		}
	}
}

// WithTokenTTL sets how long an issued token stays valid.
func WithTokenTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.config.TokenTTL = ttl
		}
	}
}

// WithCookieName sets the session id cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.config.CookieName = name
		}
	}
}

// WithSecureCookie toggles the Secure flag on the session id cookie.
func WithSecureCookie(secure bool) Option {
	return func(m *Manager) {
		m.config.SecureCookie = secure
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}
