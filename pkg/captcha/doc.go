// Package captcha verifies reCAPTCHA responses against the siteverify endpoint.
//
// A Client posts the secret, the user's response token and the remote address
// as a form and decodes the JSON verdict:
//
//	client := captcha.New(captcha.WithTimeout(5 * time.Second))
//	resp, err := client.Verify(ctx, secret, token, remoteIP)
//	if err != nil || !resp.Success {
//		// reject
//	}
//
// The secret BypassSecret short-circuits to success without a network call,
// which keeps test suites and local environments offline.
//
// Transport failures, timeouts, non-200 statuses and malformed bodies are
// reported as errors wrapping ErrVerificationFailed together with a
// Response whose Success is false.
package captcha
