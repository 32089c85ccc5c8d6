// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until ctx is cancelled, SIGINT or SIGTERM arrives, or the
// listener fails. Shutdown then drains in-flight requests within the
// configured timeout.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" /
// "NOT_READY") endpoints backed by dependency checks such as redis.Healthcheck.
package httpserver
