package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payqr/core/config"
)

func TestLoad(t *testing.T) {
	t.Run("parses env with defaults", func(t *testing.T) {
		type parseCfg struct {
			Name string `env:"CONFIG_TEST_NAME" envDefault:"fallback"`
			Size int    `env:"CONFIG_TEST_SIZE" envDefault:"490"`
		}

		t.Setenv("CONFIG_TEST_NAME", "payqr")

		var cfg parseCfg
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "payqr", cfg.Name)
		assert.Equal(t, 490, cfg.Size)
	})

	t.Run("caches per type", func(t *testing.T) {
		type cachedCfg struct {
			Value string `env:"CONFIG_TEST_CACHED" envDefault:"first"`
		}

		var first cachedCfg
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		// Environment changes after the first load are not observed.
		t.Setenv("CONFIG_TEST_CACHED", "second")
		var again cachedCfg
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value)
	})

	t.Run("required variable missing", func(t *testing.T) {
		type requiredCfg struct {
			Token string `env:"CONFIG_TEST_REQUIRED,required"`
		}

		var cfg requiredCfg
		require.Error(t, config.Load(&cfg))
	})

	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.Load[struct{}](nil))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type mustCfg struct {
			Token string `env:"CONFIG_TEST_MUST,required"`
		}

		assert.Panics(t, func() {
			var cfg mustCfg
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with defaults", func(t *testing.T) {
		type okCfg struct {
			Name string `env:"CONFIG_TEST_OK" envDefault:"ok"`
		}

		var cfg okCfg
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "ok", cfg.Name)
	})
}
