// Package logger builds *slog.Logger instances for formcheck services and
// provides attribute helpers so every package names its log keys the same way.
//
// New assembles a text or JSON slog.Handler from functional options and wraps
// it in LogHandlerDecorator, which pulls request-scoped values (session id,
// client address) out of context.Context on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "signup"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.WarnContext(ctx, "captcha verification failed",
//	    logger.Component("captcha"),
//	    logger.RemoteAddr(ip),
//	    logger.Error(err),
//	)
//
// Libraries in this module accept an optional *slog.Logger and fall back to
// Discard, so they stay silent unless the application wires a logger in.
package logger
