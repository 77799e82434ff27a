package logger_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payqr/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("gen", slog.String("template", "default"), slog.Int("size", 490))
	require.Equal(t, "gen", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "template", g[0].Key)
	assert.Equal(t, "size", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "component", logger.Component("store").Key)
	assert.Equal(t, "template", logger.Template("default").Key)
	assert.Equal(t, "output", logger.Output("/tmp/qr.png").Key)
	assert.Equal(t, "size", logger.Size(490).Key)
	assert.Equal(t, "duration", logger.Duration(time.Second).Key)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("custom handler output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithHandler(slog.NewTextHandler(&buf, nil)),
		)
		log.Info("hello", logger.Component("test"))
		out := buf.String()
		assert.Contains(t, out, "hello")
		assert.Contains(t, out, "component=test")
	})

	t.Run("development level is debug", func(t *testing.T) {
		t.Parallel()
		log := logger.New(logger.WithDevelopment("payqr"))
		assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	})
}
