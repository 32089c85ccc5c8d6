package main

import (
	"github.com/dmitrymomot/formcheck/pkg/captcha"
	"github.com/dmitrymomot/formcheck/pkg/csrf"
	"github.com/dmitrymomot/formcheck/pkg/hasher"
	"github.com/dmitrymomot/formcheck/pkg/httpserver"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"signup"`

	HTTP    httpserver.Config
	CSRF    csrf.Config
	Captcha captcha.Config
	Hash    hasher.Config

	RateLimit rateLimitConfig
}
