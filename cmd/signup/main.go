// Command signup serves a registration form backend that validates input
// with pkg/validation and protects submissions with CSRF tokens and reCAPTCHA.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formcheck/pkg/captcha"
	"github.com/dmitrymomot/formcheck/pkg/config"
	"github.com/dmitrymomot/formcheck/pkg/csrf"
	"github.com/dmitrymomot/formcheck/pkg/hasher"
	"github.com/dmitrymomot/formcheck/pkg/httpserver"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/pg"
	"github.com/dmitrymomot/formcheck/pkg/redis"
	"github.com/dmitrymomot/formcheck/pkg/validation"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("signup service stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store, checks, closeStore, err := openStore(ctx, cfg.CSRF, log)
	if err != nil {
		return err
	}
	defer closeStore()

	manager := csrf.NewManagerFromConfig(store, cfg.CSRF, csrf.WithLogger(log))

	validatorOpts := []validation.Option{
		validation.WithLogger(log),
		validation.WithHasher(hasher.NewFromConfig(cfg.Hash)),
		validation.WithCaptchaVerifier(captcha.NewFromConfig(cfg.Captcha, captcha.WithLogger(log))),
		validation.WithCaptchaSecret(cfg.Captcha.Secret),
	}

	router := newRouter(newSignupHandler(manager, log, validatorOpts...), manager, cfg.RateLimit, log, checks...)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

// openStore builds the token store selected by cfg.Store and returns the
// readiness checks and cleanup that go with it.
func openStore(ctx context.Context, cfg csrf.Config, log *slog.Logger) (csrf.Store, []func(context.Context) error, func(), error) {
	switch cfg.Store {
	case "", "memory":
		store := csrf.NewMemoryStore(cfg.CleanupInterval)
		return store, nil, func() { _ = store.Close() }, nil

	case "redis":
		var rcfg redis.Config
		if err := config.Load(&rcfg); err != nil {
			return nil, nil, nil, err
		}
		client, err := redis.Connect(ctx, rcfg)
		if err != nil {
			return nil, nil, nil, err
		}
		log.InfoContext(ctx, "csrf tokens stored in redis", logger.Component("csrf"))
		checks := []func(context.Context) error{redis.Healthcheck(client)}
		return csrf.NewRedisStore(client), checks, func() { _ = client.Close() }, nil

	case "postgres":
		var pcfg pg.Config
		if err := config.Load(&pcfg); err != nil {
			return nil, nil, nil, err
		}
		pool, err := pg.Connect(ctx, pcfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := pg.MigrateFS(ctx, pool, csrf.Migrations, csrf.MigrationsDir, pcfg, log); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		store := csrf.NewPostgresStore(pool)
		stop := sweepExpired(ctx, store, cfg.CleanupInterval, log)
		log.InfoContext(ctx, "csrf tokens stored in postgres", logger.Component("csrf"))
		checks := []func(context.Context) error{pg.Healthcheck(pool)}
		return store, checks, func() { stop(); pool.Close() }, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown CSRF_STORE %q: want memory, redis or postgres", cfg.Store)
	}
}

// sweepExpired periodically deletes expired Postgres tokens until the
// returned stop function is called.
func sweepExpired(ctx context.Context, store *csrf.PostgresStore, interval time.Duration, log *slog.Logger) func() {
	if interval <= 0 {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := store.DeleteExpired(ctx)
				if err != nil {
					log.WarnContext(ctx, "csrf sweep failed", logger.Component("csrf"), logger.Error(err))
					continue
				}
				if n > 0 {
					log.DebugContext(ctx, "csrf sweep", logger.Component("csrf"), slog.Int64("deleted", n))
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
