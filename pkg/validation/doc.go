// Package validation provides a chainable single-field validator and helpers
// for aggregating per-field outcomes.
//
// A Validator holds one candidate Value, a pass flag and the first failure
// message. Load a value with Set or Sanitize, chain predicates, then call Run:
//
//	v := validation.New()
//
//	results := validation.Results{
//		"name":  v.Sanitize(form.Get("name")).Required("").Max(64, "").Run(),
//		"age":   v.Set(form.Get("age")).Required("").Integer("").Between(18, 120, "").Run(),
//		"email": v.Email(form.Get("email"), "").Run(),
//		"csrf":  v.Set(form.Get("csrf_token")).CSRFFrom(ctx, tokens, "").Run(),
//	}
//
//	if !results.Approve() {
//		render(results.Errors())
//		return
//	}
//	save(results.Validated("csrf"))
//
// # Chain semantics
//
// Once a predicate fails, later predicates in the chain do nothing and the
// first message is kept until Run. Email, CSRF and Captcha are the
// exceptions: they may start a chain and they run even after a failure,
// storing their value (the address, the CSRF fallback, Bool(true) for a
// solved captcha), but they never replace a recorded message. Hash is never
// gated.
//
// Run returns Result{Value: v} on success or Failure(message) otherwise,
// then resets the pass flag and message so the same Validator can check the
// next field. The stored value is kept, so calling Run twice returns it twice.
//
// An empty message argument selects the default message for the predicate
// (see MsgRequired and friends).
//
// # Values
//
// Value is a tagged union of null, string, int, float and bool. Equals and In
// compare strictly (Int(123) differs from String("123")); CSRF compares
// loosely. Lengths count characters of the NFC-normalised string form.
//
// # Contract violations
//
// Invalid arguments are programming errors, not validation failures: Regex
// panics with an error wrapping ErrInvalidPattern, Date with ErrInvalidLayout
// and nil callbacks with ErrInvalidArgument.
//
// A Validator is not safe for concurrent use.
package validation
