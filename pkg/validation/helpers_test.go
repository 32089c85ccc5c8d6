package validation_test

import (
	"context"
	"sync"

	"github.com/dmitrymomot/formcheck/pkg/captcha"
	"github.com/dmitrymomot/formcheck/pkg/validation"
)

type stubHasher struct{}

func (stubHasher) Hash(value, salt string) string {
	return "hashed(" + value + "," + salt + ")"
}

type verifyCall struct {
	secret, response, remoteAddr string
}

type fakeVerifier struct {
	mu    sync.Mutex
	calls []verifyCall
	resp  captcha.Response
	err   error
}

func (f *fakeVerifier) Verify(_ context.Context, secret, response, remoteAddr string) (captcha.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, verifyCall{secret, response, remoteAddr})
	return f.resp, f.err
}

func (f *fakeVerifier) Calls() []verifyCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]verifyCall(nil), f.calls...)
}

func newValidator(opts ...validation.Option) *validation.Validator {
	return validation.New(append([]validation.Option{
		validation.WithHasher(stubHasher{}),
		validation.WithCaptchaVerifier(&fakeVerifier{}),
	}, opts...)...)
}

func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}
