// Package config loads environment-driven configuration into tagged structs.
//
// It wraps github.com/joho/godotenv for reading .env files and
// github.com/caarlos0/env/v11 for parsing the process environment into a
// struct. Parsed values are cached per struct type (and prefix), so repeated
// Load calls for the same type are cheap and always observe the same value.
//
//	type Config struct {
//	    Addr string `env:"ADDR" envDefault:":8080"`
//	    Env  string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// The first Load reads ./.env when it exists. LoadEnv reads explicit files
// and never overrides variables already present in the environment.
//
// Reset drops the cache, which is mainly useful in tests.
package config
