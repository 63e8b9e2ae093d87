package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"zmatch/internal/testsupport"
)

func TestCommandContextClosesLogFile(t *testing.T) {
	base := t.TempDir()
	logDir := filepath.Join(base, "logs")
	configPath := filepath.Join(base, "config.toml")
	testsupport.WriteText(t, configPath, fmt.Sprintf(
		"[paths]\ndest_dir = %q\nlog_dir = %q\n", filepath.Join(base, "dest"), logDir))

	ctx := newCommandContext(&configPath)
	logger := ctx.ensureLogger()
	logger.Info("hello")

	if ctx.logCloser == nil {
		t.Fatal("expected an open log file handle")
	}
	ctx.close()
	if ctx.logCloser != nil {
		t.Fatal("close must release the handle")
	}
	ctx.close() // idempotent

	if _, err := os.Stat(filepath.Join(logDir, "zmatch.log")); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}

func TestCommandContextCloseWithoutLogger(t *testing.T) {
	empty := ""
	ctx := newCommandContext(&empty)
	ctx.close()
}
