package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type defaultsConfig struct {
	Event string `env:"TEST_FORM_EVENT" envDefault:"change"`
	Limit int    `env:"TEST_FORM_LIMIT" envDefault:"42"`
	Debug bool   `env:"TEST_FORM_DEBUG" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"default"`
}

type requiredConfig struct {
	Value string `env:"TEST_REQUIRED_VALUE,required"`
}

type prefixedConfig struct {
	Lang string `env:"LANG_CODE" envDefault:"en"`
}

type fileConfig struct {
	Help string `env:"TEST_FILE_HELP"`
}

func TestLoad(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("TEST_FORM_EVENT")

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "change", cfg.Event)
		assert.Equal(t, 42, cfg.Limit)
		assert.True(t, cfg.Debug)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_FORM_EVENT", "blur")
		t.Setenv("TEST_FORM_LIMIT", "7")

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "blur", cfg.Event)
		assert.Equal(t, 7, cfg.Limit)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("TEST_CACHED_VALUE", "first")

		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CACHED_VALUE", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)

		config.Reset()
		var third cachedConfig
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Value)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("TEST_REQUIRED_VALUE")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *defaultsConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("prefix", func(t *testing.T) {
		config.Reset()
		t.Setenv("SIGNUP_LANG_CODE", "de")

		var plain, prefixed prefixedConfig
		require.NoError(t, config.Load(&prefixed, config.WithPrefix("SIGNUP_")))
		require.NoError(t, config.Load(&plain))
		assert.Equal(t, "de", prefixed.Lang)
		assert.Equal(t, "en", plain.Lang)
	})

	t.Run("must load panics", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("TEST_REQUIRED_VALUE")
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads file", func(t *testing.T) {
		config.Reset()
		os.Unsetenv("TEST_FILE_HELP")
		t.Cleanup(func() { os.Unsetenv("TEST_FILE_HELP") })

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_FILE_HELP=\"please fix\"\n"), 0o600))
		require.NoError(t, config.LoadEnv(path))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "please fix", cfg.Help)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "nope.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("no files is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
