// Package logger configures structured slog logging and provides attribute
// helpers for consistent log field naming across the application.
package logger

import (
	"log/slog"
	"os"
)

type options struct {
	handler slog.Handler
	appName string
	level   slog.Level
	json    bool
}

// Option configures the logger during construction.
type Option func(*options)

// WithDevelopment enables human-readable text output at debug level,
// tagged with the application name.
func WithDevelopment(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.level = slog.LevelDebug
		o.json = false
	}
}

// WithJSON enables JSON output tagged with the application name.
func WithJSON(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.json = true
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithHandler replaces the handler entirely; level and format options are
// ignored, the application name still applies.
func WithHandler(h slog.Handler) Option {
	return func(o *options) {
		o.handler = h
	}
}

// New creates a configured *slog.Logger writing to stderr.
func New(opts ...Option) *slog.Logger {
	o := options{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&o)
	}

	handler := o.handler
	if handler == nil {
		hopts := &slog.HandlerOptions{Level: o.level}
		if o.json {
			handler = slog.NewJSONHandler(os.Stderr, hopts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, hopts)
		}
	}

	log := slog.New(handler)
	if o.appName != "" {
		log = log.With(slog.String("app", o.appName))
	}
	return log
}
