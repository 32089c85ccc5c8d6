package validation

import (
	"context"

	"github.com/dmitrymomot/formcheck/pkg/captcha"
)

// Sanitizer removes markup from user input.
type Sanitizer interface {
	StripTags(s string, allowed ...string) string
}

// SanitizerFunc adapts a function to the Sanitizer interface.
type SanitizerFunc func(s string, allowed ...string) string

func (f SanitizerFunc) StripTags(s string, allowed ...string) string {
	return f(s, allowed...)
}

// Hasher produces a salted one-way hash. An empty salt lets the
// implementation choose one.
type Hasher interface {
	Hash(value, salt string) string
}

// CaptchaVerifier checks a captcha response with the issuing service.
type CaptchaVerifier interface {
	Verify(ctx context.Context, secret, response, remoteAddr string) (captcha.Response, error)
}

// TokenSource returns the CSRF tokens currently valid for a caller.
type TokenSource interface {
	Tokens(ctx context.Context) ([]string, error)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) ([]string, error)

func (f TokenSourceFunc) Tokens(ctx context.Context) ([]string, error) {
	return f(ctx)
}
