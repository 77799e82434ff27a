package logger

import (
	"log/slog"
	"time"
)

// Component tags a log record with the emitting component name.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Error wraps a non-nil error into an attribute. Returns the empty attribute
// for nil, which slog drops silently.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple errors into one attribute, skipping nils. Returns
// the empty attribute when no error remains.
func Errors(errs ...error) slog.Attr {
	attrs := make([]slog.Attr, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			attrs = append(attrs, slog.Any("", err))
		}
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}

	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return slog.Group("errors", args...)
}

// Group collects attributes under a common key.
func Group(key string, attrs ...slog.Attr) slog.Attr {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return slog.Group(key, args...)
}

// Duration records an elapsed time.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Template tags a record with a template identifier.
func Template(id string) slog.Attr {
	return slog.String("template", id)
}

// Output tags a record with an output file path.
func Output(path string) slog.Attr {
	return slog.String("output", path)
}

// Size records a byte or pixel count.
func Size(n int) slog.Attr {
	return slog.Int("size", n)
}
