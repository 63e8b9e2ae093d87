package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("matched rows", Int("count", 3), String("track", "JIM"))

	line := buf.String()
	for _, want := range []string{"INFO", "matched rows", "count=3", "track=JIM"} {
		if !strings.Contains(line, want) {
			t.Fatalf("line %q missing %q", line, want)
		}
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("copy done", String("file", "a.wav"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("not json: %v\n%s", err, buf.String())
	}
	if record["msg"] != "copy done" || record["file"] != "a.wav" {
		t.Fatalf("record = %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("visible")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatal("info line should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Fatal("warn line should pass")
	}
}

func TestWithAttrsCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.With(String("component", "reconcile")).Info("batch complete")
	if !strings.Contains(buf.String(), "component=reconcile") {
		t.Fatalf("line %q missing component attr", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Info("should not panic or emit")
	logger.Error("still nothing", Error(nil))
}
