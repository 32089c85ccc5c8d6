// Package pg opens pgx connection pools and applies goose migrations for the
// Postgres-backed CSRF token store.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.MigrateFS(ctx, pool, csrf.Migrations, csrf.MigrationsDir, cfg, log); err != nil {
//		return err
//	}
//
//	store := csrf.NewPostgresStore(pool)
//
// Migrate reads migrations from cfg.MigrationsPath on disk instead; MigrateFS
// takes any fs.FS, typically an embed.FS shipped with the package owning the
// schema. Both run goose against the same pool through database/sql.
//
// IsNotFoundError, IsDuplicateKeyError and friends classify pgx errors.
package pg
