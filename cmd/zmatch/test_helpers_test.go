package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"zmatch/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	destDir    string

	recorderPath    string
	transmitterPath string
	sourceDir       string
}

// setupCLITestEnv lays out a full working set on disk: a config file, a
// recorder log with one take, a transmitter log whose file exists in the
// source directory under a different case.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	destDir := filepath.Join(base, "dest")
	logDir := filepath.Join(base, "logs")

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(
		"[paths]\ndest_dir = %q\nlog_dir = %q\n\n[matching]\ntolerance_seconds = 3.0\ndefault_fps = 23.98\n\n[report]\nenabled = true\n\n[logging]\nformat = \"console\"\nlevel = \"info\"\n",
		destDir, logDir)
	testsupport.WriteText(t, configPath, content)

	recorderPath := filepath.Join(base, "take_log.csv")
	testsupport.WriteText(t, recorderPath, testsupport.RecorderLog("0007",
		"FileID,TimeCode,UserBits,FrameRate,Scene,Take,Name1,Name2",
		"R1,01:00:00:00,12345678,24,5,2,JIM,",
		"R2,01:05:00:00,12345678,24,5,3,JIM,"))

	sourceDir := filepath.Join(base, "card")
	transmitterPath := filepath.Join(sourceDir, "file_log.csv")
	testsupport.WriteText(t, transmitterPath, testsupport.TransmitterLog(
		"FileID,TimeCode,UserBits,FrameRate,FileName",
		"X1,01:00:00:02,12345678,24,T001.WAV",
		"X2,01:05:00:01,12345678,24,T002.WAV"))
	testsupport.WriteFile(t, filepath.Join(sourceDir, "t001.wav"), 64)
	testsupport.WriteFile(t, filepath.Join(sourceDir, "T002.WAV"), 64)

	return &cliTestEnv{
		baseDir:         base,
		configPath:      configPath,
		destDir:         destDir,
		recorderPath:    recorderPath,
		transmitterPath: transmitterPath,
		sourceDir:       sourceDir,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
