package captcha

import "errors"

var (
	// ErrVerificationFailed wraps every failure to obtain a verdict from the verify endpoint.
	ErrVerificationFailed = errors.New("captcha: verification request failed")

	// ErrInvalidVerifyURL is raised by WithVerifyURL for an empty URL.
	ErrInvalidVerifyURL = errors.New("captcha: verify url must not be empty")
)
