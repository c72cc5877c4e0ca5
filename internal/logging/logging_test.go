package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "debug", FormatJSON)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Infow("rendered", "model", "genus")
	_ = logger.Sync()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode json log %q: %v", buf.String(), err)
	}
	if entry["msg"] != "rendered" || entry["model"] != "genus" || entry["logger"] != "listgen" {
		t.Fatalf("unexpected entry %v", entry)
	}

	buf.Reset()
	logger, err = New(&buf, "info", FormatLogfmt)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Infow("rendered", "model", "genus")
	if out := buf.String(); !strings.Contains(out, "msg=rendered") || !strings.Contains(out, "model=genus") {
		t.Fatalf("unexpected logfmt output %q", out)
	}

	buf.Reset()
	logger, err = New(&buf, "warn", "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "WARN") {
		t.Fatalf("unexpected console output %q", out)
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud", FormatJSON); err == nil {
		t.Fatalf("expected invalid level error")
	}
	if _, err := New(&bytes.Buffer{}, "info", "xml"); err == nil {
		t.Fatalf("expected invalid format error")
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel(" ")
	if err != nil || lvl != zapcore.InfoLevel {
		t.Fatalf("empty level should be info, got %v %v", lvl, err)
	}
	lvl, err = ParseLevel("ERROR")
	if err != nil || lvl != zapcore.ErrorLevel {
		t.Fatalf("unexpected level %v %v", lvl, err)
	}
}
