// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		zl    zerolog.Level
		level slog.Level
		want  bool
	}{
		{"info logger accepts info", zerolog.InfoLevel, slog.LevelInfo, true},
		{"info logger rejects debug", zerolog.InfoLevel, slog.LevelDebug, false},
		{"warn logger accepts error", zerolog.WarnLevel, slog.LevelError, true},
		{"error logger rejects warn", zerolog.ErrorLevel, slog.LevelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := NewSlogHandlerWithLogger(zerolog.New(nil).Level(tt.zl))
			if got := h.Enabled(context.Background(), tt.level); got != tt.want {
				t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	logger.Warn("service restarting",
		slog.String("service", "http-server"),
		slog.Int("attempt", 3),
		slog.Bool("backoff", true),
		slog.Duration("wait", 15*time.Second),
	)

	output := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarting"`,
		`"service":"http-server"`,
		`"attempt":3`,
		`"backoff":true`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %s: %s", want, output)
		}
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewSlogHandlerWithLogger(zerolog.New(&buf))

	handler := base.WithAttrs([]slog.Attr{slog.String("tree", "root")}).WithGroup("supervisor")
	slog.New(handler).Info("event", slog.String("name", "api"))

	output := buf.String()
	if !strings.Contains(output, `"supervisor.tree":"root"`) {
		t.Errorf("output missing grouped pre-set attr: %s", output)
	}
	if !strings.Contains(output, `"supervisor.name":"api"`) {
		t.Errorf("output missing grouped record attr: %s", output)
	}

	if base.WithGroup("") != base {
		t.Error("WithGroup(\"\") should return the same handler")
	}
}

func TestSlogHandler_NestedGroupAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	logger.Info("nested", slog.Group("service", slog.String("name", "import"), slog.Int("restarts", 1)))

	output := buf.String()
	if !strings.Contains(output, `"service.name":"import"`) {
		t.Errorf("output missing flattened group key: %s", output)
	}
	if !strings.Contains(output, `"service.restarts":1`) {
		t.Errorf("output missing flattened group key: %s", output)
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer Init(DefaultConfig())

	NewSlogLogger().Info("via slog")

	if !strings.Contains(buf.String(), "via slog") {
		t.Errorf("global logger not used: %s", buf.String())
	}
}
