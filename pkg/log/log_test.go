package log_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"voice-fact-skill/pkg/log"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	if got := log.TraceID(ctx); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}

	ctx = log.WithTraceID(ctx, "abc-123")
	if got := log.TraceID(ctx); got != "abc-123" {
		t.Errorf("expected abc-123, got %q", got)
	}
}

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: log.ModeProduction, Encoding: log.EncodingConsole},
	}

	for _, cfg := range cases {
		l := log.Init(cfg)
		if l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
		ctx := log.WithTraceID(context.Background(), "trace")
		l.Infof(ctx, "initialised with %s", cfg.Encoding)
		l.Debug(context.Background(), "no trace id")
	}
}

func TestInitOutput(t *testing.T) {
	var buf bytes.Buffer
	l := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON, Output: &buf})

	l.Infof(log.WithTraceID(context.Background(), "trace-7"), "loaded %d facts", 7)
	l.Debug(context.Background(), "below level")

	out := buf.String()
	if !strings.Contains(out, `"msg":"loaded 7 facts"`) || !strings.Contains(out, `"trace_id":"trace-7"`) {
		t.Errorf("expected entry in custom output, got %q", out)
	}
	if strings.Contains(out, "below level") {
		t.Errorf("debug entry written at info level: %q", out)
	}
}
