package validation

import (
	"context"
	"net/mail"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/captcha"
	"github.com/dmitrymomot/formcheck/pkg/clientip"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// Email validates addr and stores it, replacing the current value. An
// invalid address stores False() and fails the chain. Email may start a
// chain on its own. It runs even after an earlier failure but keeps that
// failure's message.
func (v *Validator) Email(addr, msg string) *Validator {
	if email, ok := parseEmail(addr); ok {
		v.value = String(email)
		return v
	}
	v.value = False()
	v.fail("email", msg, MsgEmail)
	return v
}

// CSRF passes when the value loosely equals one of tokens. On mismatch the
// value is replaced by the first token (null when there are none) and the
// chain fails. It runs even after an earlier failure but keeps that
// failure's message.
func (v *Validator) CSRF(tokens []string, msg string) *Validator {
	for _, token := range tokens {
		if token != "" && v.value.LooseEqual(String(token)) {
			return v
		}
	}

	fallback := Null()
	if len(tokens) > 0 {
		fallback = String(tokens[0])
	}
	v.value = fallback
	v.fail("csrf", msg, MsgCSRF)
	return v
}

// CSRFFrom is CSRF with tokens read from src. A source error is logged and
// treated as an empty token list.
func (v *Validator) CSRFFrom(ctx context.Context, src TokenSource, msg string) *Validator {
	var tokens []string
	if src != nil {
		var err error
		tokens, err = src.Tokens(ctx)
		if err != nil {
			v.logger.WarnContext(ctx, "csrf token source failed",
				logger.Rule("csrf"),
				logger.Error(err),
			)
			tokens = nil
		}
	}
	return v.CSRF(tokens, msg)
}

// Captcha verifies response with the captcha service using secret, or the
// WithCaptchaSecret default when secret is empty. The remote address is
// taken from ctx (see clientip). An empty or "0" response fails without a
// request, and captcha.BypassSecret passes without one. Verifier errors
// count as failures. On success the value becomes Bool(true).
func (v *Validator) Captcha(ctx context.Context, response, secret, msg string) *Validator {
	if !String(response).Truthy() {
		v.fail("captcha", msg, MsgCaptcha)
		return v
	}

	if secret == "" {
		secret = v.captchaSecret
	}
	if secret == captcha.BypassSecret {
		v.value = Bool(true)
		return v
	}

	remoteAddr := clientip.FromContext(ctx)
	resp, err := v.captcha.Verify(ctx, secret, response, remoteAddr)
	if err != nil {
		v.logger.WarnContext(ctx, "captcha verification failed",
			logger.Rule("captcha"),
			logger.RemoteAddr(remoteAddr),
			logger.Error(err),
		)
		v.fail("captcha", msg, MsgCaptcha)
		return v
	}
	if !resp.Success {
		v.fail("captcha", msg, MsgCaptcha)
		return v
	}

	v.value = Bool(true)
	return v
}

// parseEmail accepts a bare address with a non-empty local part and a dotted
// domain without empty labels.
func parseEmail(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return "", false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return "", false
	}
	if !strings.Contains(domain, ".") {
		return "", false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			return "", false
		}
	}

	return addr.Address, true
}
