package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"mkmovies/internal/logging"
)

func TestNewJSONFormatEmitsObjects(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("encode complete", logging.Args(logging.Int("groups", 2))...)

	var event map[string]any
	if err := json.Unmarshal(buf.Bytes(), &event); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if event["msg"] != "encode complete" {
		t.Fatalf("unexpected msg: %v", event["msg"])
	}
	if event["groups"] != float64(2) {
		t.Fatalf("unexpected groups attr: %v", event["groups"])
	}
}

func TestNewConsoleFormatIncludesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Warn("encoder failed", logging.Args(logging.String("output", "movie_001.mp4"))...)

	line := buf.String()
	if !strings.Contains(line, "WARN") {
		t.Fatalf("expected level tag in %q", line)
	}
	if !strings.Contains(line, "output=movie_001.mp4") {
		t.Fatalf("expected attr in %q", line)
	}
}

func TestNewConsoleLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("should be dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info suppressed at warn level, got %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), 0) {
		t.Fatal("nop logger must not be enabled")
	}
}
