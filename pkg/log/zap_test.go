package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"strategy-shop/pkg/log"
)

func TestContextFieldsAttached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewWithZap(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-1")
	ctx = log.WithUserID(ctx, "user-1")
	l.Infof(ctx, "hello %s", "world")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "hello world" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" || fields["user_id"] != "user-1" {
		t.Errorf("missing context fields: %v", fields)
	}
}

func TestInitFallsBackToInfo(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "nonsense", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Debug(context.Background(), "dropped")
}

func TestRequestIDEmpty(t *testing.T) {
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}
