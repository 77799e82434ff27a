// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// A .env file is loaded automatically on first use; parsing is done by the
// caarlos0/env library via struct tags.
//
//	type AppConfig struct {
//		TemplatesDir string `env:"PAYQR_TEMPLATES_DIR"`
//		ImageSize    int    `env:"PAYQR_IMAGE_SIZE" envDefault:"490"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded once per process; subsequent Load calls
// for the same type return the cached value.
package config
