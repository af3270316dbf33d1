package log

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoggerWritesJSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := New(ZapConfig{Level: "debug"}, zapcore.AddSync(&buf))
	ctx := WithRequestID(context.Background(), "req-1")
	l.Infof(ctx, "saved %d tasks", 3)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "saved 3 tasks" || line["level"] != "INFO" || line["request_id"] != "req-1" {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(ZapConfig{Level: "warn", Encoding: "console"}, zapcore.AddSync(&buf))
	l.Info(context.Background(), "hidden")
	l.Warnf(context.Background(), "flush failed: %s", "disk full")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "flush failed: disk full") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if parseLevel("loud") != zapcore.InfoLevel {
		t.Fatal("expected info for unknown level")
	}
	if parseLevel(" ERROR ") != zapcore.ErrorLevel {
		t.Fatal("expected error level")
	}
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dayboard.log")
	l := Init(ZapConfig{Level: "info", File: path})
	l.Error(context.Background(), "boom")
	_ = l.Sync()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(raw), "boom") {
		t.Fatalf("expected message in log file, got %q", raw)
	}
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	l.Errorf(context.Background(), "ignored %d", 1)
	if err := l.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
}
