// Package csrf issues per-session CSRF tokens and keeps them in a Store so
// that form handlers can check submitted tokens with the validation package.
//
// A Manager generates 32-byte random tokens, stores them with a TTL and
// exposes the currently valid ones. Several tokens can be live for one
// session at a time, so a user may keep more than one form open.
//
//	store := csrf.NewMemoryStore(time.Minute)
//	defer store.Close()
//	m := csrf.NewManager(store, csrf.WithTokenTTL(30*time.Minute))
//
//	r := chi.NewRouter()
//	r.Use(m.Middleware) // assigns a session id cookie
//
//	// issuing
//	token, err := m.Issue(ctx, csrf.SessionIDFromContext(ctx))
//
//	// checking
//	res := v.Set(form.Get("csrf_token")).CSRFFrom(ctx, m.ContextSource(), "").Run()
//
// Stores:
//
//   - MemoryStore keeps tokens in process and sweeps expired ones on a ticker.
//   - RedisStore keeps one sorted set per session scored by expiry time.
//   - PostgresStore keeps a csrf_tokens table; its schema ships as goose
//     migrations in Migrations.
package csrf
