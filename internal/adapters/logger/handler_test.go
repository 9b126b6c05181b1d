package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sharetree/internal/adapters/logger"
)

func newHandler(t *testing.T, buf *bytes.Buffer) *logger.PrettyHandler {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
}

func TestPrettyHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info", level: slog.LevelInfo, msg: "collected referenced exports", goldenName: "handler_info"},
		{name: "warn", level: slog.LevelWarn, msg: "fallback has side effects", goldenName: "handler_warn"},
		{name: "error", level: slog.LevelError, msg: "manifest patch failed", goldenName: "handler_error"},
		{name: "debug filtered", level: slog.LevelDebug, msg: "hidden", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			lg := slog.New(newHandler(t, buf))

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(h slog.Handler) slog.Handler
		args       []any
		goldenName string
	}{
		{
			name:       "record attrs",
			setup:      func(h slog.Handler) slog.Handler { return h },
			args:       []any{"share_key", "react", "runtimes", 2},
			goldenName: "handler_record_attrs",
		},
		{
			name: "handler attrs before record attrs",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.Int("session", 1)})
			},
			args:       []any{"share_key", "react"},
			goldenName: "handler_combined_attrs",
		},
		{
			name: "nested groups",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("pass").WithGroup("collect")
			},
			args:       []any{"modules", 3},
			goldenName: "handler_group_nested",
		},
		{
			name: "group attribute",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("pass")
			},
			args:       []any{slog.Group("runtime", slog.String("name", "main"))},
			goldenName: "handler_attr_group",
		},
		{
			name: "empty group name is ignored",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("")
			},
			args:       []any{"key", "val"},
			goldenName: "handler_group_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			lg := slog.New(tt.setup(newHandler(t, buf)))

			lg.Info("pass finished", tt.args...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrsKeepsParent(t *testing.T) {
	buf := &bytes.Buffer{}
	base := newHandler(t, buf)
	_ = base.WithAttrs([]slog.Attr{slog.String("child", "only")})

	slog.New(base).Info("parent")

	assert.Equal(t, "parent\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, handler.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		_ = logger.NewPrettyHandler(nil, nil)
	})
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPrettyHandler_WriteError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	handler := logger.NewPrettyHandler(brokenWriter{}, nil)

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "lost", 0)
	err := handler.Handle(t.Context(), record)

	require.Error(t, err)
}
