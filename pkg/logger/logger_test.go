package logger

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"INFO", slog.LevelInfo},
		{"unknown", slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := parseLevel(tc.in); got != tc.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFromContext_WithRequestID(t *testing.T) {
	Init("info", "json")

	ctx := WithContext(context.Background(), RequestIDKey, "req-123")
	if log := FromContext(ctx); log == nil {
		t.Fatal("FromContext returned nil")
	}
}

func TestDefault_InitializesLazily(t *testing.T) {
	defaultLogger = nil
	if Default() == nil {
		t.Fatal("Default returned nil")
	}
}
