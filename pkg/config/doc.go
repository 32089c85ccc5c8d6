// Package config loads typed configuration structs from the process
// environment, optionally seeded from .env files.
//
// Parsing is delegated to github.com/caarlos0/env/v11 and .env handling to
// github.com/joho/godotenv. Each struct type is parsed once and cached, so
// packages can call Load for their own Config without coordinating:
//
//	var cfg captcha.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// ResetCache and ForceReload exist for tests that change the environment
// between cases.
package config
