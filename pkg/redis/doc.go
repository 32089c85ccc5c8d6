// Package redis connects to Redis for the CSRF token store.
//
// Connect parses a redis:// URL, pings the server and retries with a fixed
// interval until it answers or the connect timeout elapses. Healthcheck
// wraps a client into a health check function.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := csrf.NewRedisStore(client)
package redis
