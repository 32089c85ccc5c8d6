package validation

// Config holds validator settings loaded from the environment.
type Config struct {
	CaptchaSecret    string `env:"CAPTCHA_SECRET"`
	PatternCacheSize int    `env:"VALIDATION_PATTERN_CACHE_SIZE" envDefault:"256"`
}

// NewFromConfig creates a Validator from cfg. Explicit options win over cfg.
func NewFromConfig(cfg Config, opts ...Option) *Validator {
	base := make([]Option, 0, 2+len(opts))
	if cfg.CaptchaSecret != "" {
		base = append(base, WithCaptchaSecret(cfg.CaptchaSecret))
	}
	if cfg.PatternCacheSize > 0 {
		base = append(base, WithPatternCacheSize(cfg.PatternCacheSize))
	}
	return New(append(base, opts...)...)
}
