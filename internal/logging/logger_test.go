package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"setlist/internal/logging"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	noColor := false
	logger, err := logging.New(logging.Options{Writer: &buf, Color: &noColor})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("imported songs", "count", 3, "source", "stream log")

	line := buf.String()
	if !strings.Contains(line, "INFO imported songs") {
		t.Fatalf("unexpected console line %q", line)
	}
	if !strings.Contains(line, "count=3") {
		t.Fatalf("expected attrs rendered, got %q", line)
	}
	if !strings.Contains(line, `source="stream log"`) {
		t.Fatalf("expected spaced values quoted, got %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no ANSI colors, got %q", line)
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	noColor := false
	logger, err := logging.New(logging.Options{Level: "warn", Writer: &buf, Color: &noColor})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info suppressed at warn level, got %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("expected warning emitted, got %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("imported songs", "count", 3)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "imported songs" || record["level"] != "info" {
		t.Fatalf("unexpected record %v", record)
	}
	if record["count"] != float64(3) {
		t.Fatalf("expected count attr, got %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
