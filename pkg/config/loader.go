package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes a single Load call.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix prepends prefix to every env key of the struct (e.g. "SIGNUP_").
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

type cacheKey struct {
	typ    reflect.Type
	prefix string
}

var (
	mu       sync.Mutex
	cache    = map[cacheKey]any{}
	dotenvMu sync.Once
)

// LoadEnv loads the given .env files into the process environment.
// Variables that are already set win over file contents.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the environment into v. The result is cached per type and
// prefix: later calls copy the cached value without re-reading the environment.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	dotenvMu.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	key := cacheKey{typ: reflect.TypeOf(v).Elem(), prefix: o.prefix}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Reset clears every cached configuration.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = map[cacheKey]any{}
}
