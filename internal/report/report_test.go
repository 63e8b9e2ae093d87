package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"zmatch/internal/matching"
	"zmatch/internal/sessionlog"
	"zmatch/internal/testsupport"
)

func TestTextSinkWritesReport(t *testing.T) {
	body := testsupport.TransmitterLog(
		"FileID,TimeCode,UserBits,FrameRate,FileName",
		"X1,01:00:00:02,12345678,24,T001.WAV",
	)
	tx, err := sessionlog.Normalize(strings.NewReader(body), sessionlog.KindTransmitter)
	if err != nil {
		t.Fatal(err)
	}
	matches := []matching.Match{{
		TransmitterRow:   0,
		NewFilename:      "5-T2-JIM.WAV",
		OriginalFilename: "T001.WAV",
		OffsetSeconds:    0.0833,
	}}

	dest := t.TempDir()
	if err := (TextSink{}).Write(dest, "SR0007_JIM", matches, nil, tx); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "SR0007_JIM.txt"))
	if err != nil {
		t.Fatalf("report artifact missing: %v", err)
	}
	content := string(data)
	for _, want := range []string{"5-T2-JIM.WAV", "T001.WAV", "01:00:00:02", "12345678", "0.08s"} {
		if !strings.Contains(content, want) {
			t.Fatalf("report missing %q:\n%s", want, content)
		}
	}
}

func TestTextSinkUnwritableDestination(t *testing.T) {
	err := (TextSink{}).Write(filepath.Join(t.TempDir(), "does", "not", "exist"), "SR1_X", nil, nil, &sessionlog.Table{})
	if err == nil {
		t.Fatal("expected error for unwritable destination")
	}
}
