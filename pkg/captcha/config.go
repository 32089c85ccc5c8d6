package captcha

import "time"

// Config holds verifier settings loaded from the environment.
type Config struct {
	Secret    string        `env:"CAPTCHA_SECRET"`
	VerifyURL string        `env:"CAPTCHA_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
	Timeout   time.Duration `env:"CAPTCHA_TIMEOUT" envDefault:"10s"`
}

// NewFromConfig creates a Client from cfg. Explicit options win over cfg.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	base := make([]Option, 0, 2+len(opts))
	if cfg.VerifyURL != "" {
		base = append(base, WithVerifyURL(cfg.VerifyURL))
	}
	if cfg.Timeout > 0 {
		base = append(base, WithTimeout(cfg.Timeout))
	}
	return New(append(base, opts...)...)
}
