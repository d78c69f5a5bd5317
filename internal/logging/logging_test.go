package logging

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitFallsBackToInfo(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")
	if err := Init(Config{Level: "nonsense", Format: "json", OutputPath: out}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Set(nil)

	if !L().Core().Enabled(zapcore.InfoLevel) {
		t.Error("Info level should be enabled after fallback")
	}
	if L().Core().Enabled(zapcore.DebugLevel) {
		t.Error("Debug level should be disabled after fallback")
	}

	SetLevel("debug")
	if !L().Core().Enabled(zapcore.DebugLevel) {
		t.Error("SetLevel(debug) should enable debug")
	}
	SetLevel("info")
}

func TestLReturnsLogger(t *testing.T) {
	Set(nil)
	if L() == nil {
		t.Fatal("L() must never return nil")
	}
	if S() == nil {
		t.Fatal("S() must never return nil")
	}
}

func TestWithOperationID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	defer Set(nil)

	ctx := WithOperationID(context.Background(), "op-123")
	WithContext(ctx).Info("paste finished", Path("/tmp/x"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["op_id"] != "op-123" {
		t.Errorf("Expected op_id field 'op-123', got %v", fields["op_id"])
	}
	if fields["path"] != "/tmp/x" {
		t.Errorf("Expected path field '/tmp/x', got %v", fields["path"])
	}
}
