package validation

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/formcheck/pkg/cache"
)

// Option configures a Validator.
type Option func(*Validator)

// WithSanitizer replaces the tag stripper used by Sanitize.
func WithSanitizer(s Sanitizer) Option {
	return func(v *Validator) {
		if s == nil {
			panic(fmt.Errorf("%w: nil sanitizer", ErrInvalidArgument))
		}
		v.sanitizer = s
	}
}

// WithHasher replaces the hasher used by Hash.
func WithHasher(h Hasher) Option {
	return func(v *Validator) {
		if h == nil {
			panic(fmt.Errorf("%w: nil hasher", ErrInvalidArgument))
		}
		v.hasher = h
	}
}

// WithCaptchaVerifier replaces the verifier used by Captcha.
func WithCaptchaVerifier(c CaptchaVerifier) Option {
	return func(v *Validator) {
		if c == nil {
			panic(fmt.Errorf("%w: nil captcha verifier", ErrInvalidArgument))
		}
		v.captcha = c
	}
}

// WithCaptchaSecret sets the secret used when Captcha is called without one.
func WithCaptchaSecret(secret string) Option {
	return func(v *Validator) {
		v.captchaSecret = secret
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithPatternCacheSize gives the validator a private cache of compiled
// patterns instead of the shared one. Panics if size is not positive.
func WithPatternCacheSize(size int) Option {
	return func(v *Validator) {
		if size <= 0 {
			panic(fmt.Errorf("%w: pattern cache size must be positive, got %d", ErrInvalidArgument, size))
		}
		v.patterns = cache.NewLRU[string, *regexp.Regexp](size)
	}
}
