package csrf

import "time"

// Config holds CSRF settings loaded from the environment.
type Config struct {
	TokenTTL        time.Duration `env:"CSRF_TOKEN_TTL" envDefault:"1h"`
	CookieName      string        `env:"CSRF_COOKIE_NAME" envDefault:"csrf_sid"`
	SecureCookie    bool          `env:"CSRF_SECURE_COOKIE" envDefault:"false"`
	CleanupInterval time.Duration `env:"CSRF_CLEANUP_INTERVAL" envDefault:"5m"` // expiry sweep for memory and postgres, 0 disables
	Store           string        `env:"CSRF_STORE" envDefault:"memory"`        // memory, redis or postgres
}

// DefaultConfig returns the defaults used by NewManager.
func DefaultConfig() Config {
	return Config{
		TokenTTL:        time.Hour,
		CookieName:      "csrf_sid",
		SecureCookie:    false,
		CleanupInterval: 5 * time.Minute,
		Store:           "memory",
	}
}

// NewManagerFromConfig creates a Manager over store using cfg.
func NewManagerFromConfig(store Store, cfg Config, opts ...Option) *Manager {
	return NewManager(store, append([]Option{WithConfig(cfg)}, opts...)...)
}
