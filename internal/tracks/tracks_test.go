package tracks

import (
	"strings"
	"testing"

	"zmatch/internal/sessionlog"
	"zmatch/internal/testsupport"
)

func normalize(t *testing.T, body string) *sessionlog.Table {
	t.Helper()
	table, err := sessionlog.Normalize(strings.NewReader(body), sessionlog.KindRecorder)
	if err != nil {
		t.Fatalf("normalize fixture: %v", err)
	}
	return table
}

func TestDiscoverActiveColumns(t *testing.T) {
	body := testsupport.RecorderLog("0001",
		"FileID,TimeCode,Name1,Name2,Name3,Tracks,TrackNote",
		"T001,01:00:00:00,JIM,,,2,boom",
		"T002,01:00:10:00,JIM,SARA,,2,boom",
	)
	ix := Discover(normalize(t, body))

	if want := []string{"Name1", "Name2", "TrackNote"}; !equal(ix.ActiveColumns, want) {
		t.Fatalf("active columns = %v, want %v", ix.ActiveColumns, want)
	}
	// Name1 is owned by one performer, Name2 likewise, TrackNote has one value.
	if want := []string{"JIM", "SARA", "boom"}; !equal(ix.DisplayNames, want) {
		t.Fatalf("display names = %v, want %v", ix.DisplayNames, want)
	}
	if col, ok := ix.Column("JIM"); !ok || col != "Name1" {
		t.Fatalf("Column(JIM) = %q, %v", col, ok)
	}
}

func TestDiscoverSkipsEmptyAndTracksColumn(t *testing.T) {
	body := testsupport.RecorderLog("0001",
		"FileID,Name1,Name2,Tracks",
		"T001,,,2",
		"T002,,,2",
	)
	ix := Discover(normalize(t, body))
	if len(ix.ActiveColumns) != 0 {
		t.Fatalf("expected no active columns, got %v", ix.ActiveColumns)
	}
}

func TestDiscoverMultiValueColumnKeepsColumnName(t *testing.T) {
	body := testsupport.RecorderLog("0001",
		"FileID,Name1",
		"T001,JIM",
		"T002,SARA",
	)
	ix := Discover(normalize(t, body))
	if want := []string{"Name1"}; !equal(ix.DisplayNames, want) {
		t.Fatalf("display names = %v, want %v", ix.DisplayNames, want)
	}
}

func TestDiscoverCollisionSuffix(t *testing.T) {
	body := testsupport.RecorderLog("0001",
		"FileID,Name1,Name2",
		"T001,JIM,JIM",
	)
	ix := Discover(normalize(t, body))
	if want := []string{"JIM", "JIM (Name2)"}; !equal(ix.DisplayNames, want) {
		t.Fatalf("display names = %v, want %v", ix.DisplayNames, want)
	}
	if col, ok := ix.Column("JIM (Name2)"); !ok || col != "Name2" {
		t.Fatalf("Column collision lookup = %q, %v", col, ok)
	}
}

func TestColumnAcceptsRawName(t *testing.T) {
	body := testsupport.RecorderLog("0001",
		"FileID,Name1",
		"T001,JIM",
	)
	ix := Discover(normalize(t, body))
	if col, ok := ix.Column("Name1"); !ok || col != "Name1" {
		t.Fatalf("Column(Name1) = %q, %v", col, ok)
	}
	if _, ok := ix.Column("nope"); ok {
		t.Fatal("unknown display name should not resolve")
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
