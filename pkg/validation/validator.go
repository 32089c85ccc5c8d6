package validation

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/cache"
	"github.com/dmitrymomot/formcheck/pkg/captcha"
	"github.com/dmitrymomot/formcheck/pkg/hasher"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
)

const defaultPatternCacheSize = 256

var sharedPatterns = cache.NewLRU[string, *regexp.Regexp](defaultPatternCacheSize)

// Validator checks one value at a time through a chain of predicates.
// It is not safe for concurrent use; reuse it sequentially by finishing each
// chain with Run.
type Validator struct {
	value   Value
	checked bool
	message string

	sanitizer     Sanitizer
	hasher        Hasher
	captcha       CaptchaVerifier
	captchaSecret string
	logger        *slog.Logger
	patterns      *cache.LRU[string, *regexp.Regexp]
}

// Result is the outcome of a chain: the value on success, or False() with
// the first failure message.
type Result struct {
	Value   Value  `json:"value"`
	Message string `json:"message,omitempty"`
	Invalid bool   `json:"invalid,omitempty"`
}

// Success builds a passing Result holding v.
func Success(v any) Result {
	return Result{Value: Of(v)}
}

// Failure builds a failing Result with msg.
func Failure(msg string) Result {
	return Result{Value: False(), Message: msg, Invalid: true}
}

// New creates a Validator with the default collaborators.
func New(opts ...Option) *Validator {
	v := &Validator{
		checked:   true,
		sanitizer: SanitizerFunc(sanitizer.StripTags),
		logger:    logger.Discard(),
		patterns:  sharedPatterns,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.hasher == nil {
		v.hasher = hasher.New()
	}
	if v.captcha == nil {
		v.captcha = captcha.New(captcha.WithLogger(v.logger))
	}
	return v
}

// Set stores value as is.
func (v *Validator) Set(value any) *Validator {
	v.value = Of(value)
	return v
}

// Sanitize trims s, strips every tag not listed in allowedTags and stores the
// result. Tags may be given as "<p><a>" or as names.
func (v *Validator) Sanitize(s string, allowedTags ...string) *Validator {
	return v.Set(v.sanitizer.StripTags(strings.TrimSpace(s), allowedTags...))
}

// Hash replaces the value with a salted hash of its string form. It runs
// whether or not the chain has failed.
func (v *Validator) Hash(salt string) *Validator {
	v.value = String(v.hasher.Hash(v.value.String(), salt))
	return v
}

// Run returns the chain outcome and resets the failure state so the
// Validator can be reused. The stored value is kept.
func (v *Validator) Run() Result {
	var res Result
	if v.checked {
		res = Result{Value: v.value}
	} else {
		res = Failure(v.message)
	}
	v.checked = true
	v.message = ""
	return res
}

// Value returns the current candidate value.
func (v *Validator) Value() Value { return v.value }

// Passed reports whether no predicate has failed since the last Run.
func (v *Validator) Passed() bool { return v.checked }

// Message returns the first failure message, or "" while the chain passes.
func (v *Validator) Message() string { return v.message }

// check evaluates ok unless the chain has already failed.
func (v *Validator) check(rule string, ok func() bool, msg, fallback string) *Validator {
	if !v.checked {
		return v
	}
	if !ok() {
		v.fail(rule, msg, fallback)
	}
	return v
}

// fail records a failure. The first recorded message is never replaced.
func (v *Validator) fail(rule, msg, fallback string) {
	if !v.checked {
		return
	}
	v.checked = false
	v.message = messageOr(msg, fallback)
	v.logger.Debug("validation rule failed", logger.Rule(rule), slog.String("message", v.message))
}
