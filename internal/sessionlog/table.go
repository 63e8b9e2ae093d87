package sessionlog

import (
	"strconv"
	"strings"

	"zmatch/internal/timecode"
)

// Kind distinguishes the two log flavors.
type Kind string

const (
	KindRecorder    Kind = "recorder"
	KindTransmitter Kind = "transmitter"
)

// SessionPlaceholder is the sound-roll value used when a recorder log has no
// FolderName line.
const SessionPlaceholder = "---"

// Fixed column names shared by both log flavors.
const (
	ColumnTimeCode  = "TimeCode"
	ColumnUserBits  = "UserBits"
	ColumnFrameRate = "FrameRate"
	ColumnScene     = "Scene"
	ColumnTake      = "Take"
	ColumnFileName  = "FileName"
)

// Table is the canonical row set for one normalized log. Rows are identified
// by their positional index and are immutable after Normalize returns.
type Table struct {
	Kind    Kind
	Columns []string
	Session string

	// NominalFPS is the frame rate assumed when a row has no usable
	// FrameRate value. Zero means timecode.DefaultFPS.
	NominalFPS float64

	rows []map[string]string
}

// Len reports the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Value returns the trimmed cell value at the given row and column, or the
// empty string when either is absent.
func (t *Table) Value(row int, column string) string {
	if row < 0 || row >= len(t.rows) {
		return ""
	}
	return t.rows[row][column]
}

// HasColumn reports whether the table schema carries the named column.
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// TimeCode returns the row's timecode text.
func (t *Table) TimeCode(row int) string { return t.Value(row, ColumnTimeCode) }

// UserBits returns the row's userbits text, compared as raw strings during
// matching.
func (t *Table) UserBits(row int) string { return t.Value(row, ColumnUserBits) }

// Scene returns the recorder row's scene label.
func (t *Table) Scene(row int) string { return t.Value(row, ColumnScene) }

// Take returns the recorder row's take label.
func (t *Table) Take(row int) string { return t.Value(row, ColumnTake) }

// FileName returns the transmitter row's recorded filename.
func (t *Table) FileName(row int) string { return t.Value(row, ColumnFileName) }

// FrameRate returns the row's frame rate, falling back to the nominal rate
// when the field is missing, empty, or not a positive number.
func (t *Table) FrameRate(row int) float64 {
	raw := strings.TrimSpace(t.Value(row, ColumnFrameRate))
	if raw == "" {
		return t.nominal()
	}
	fps, err := strconv.ParseFloat(raw, 64)
	if err != nil || fps <= 0 {
		return t.nominal()
	}
	return fps
}

func (t *Table) nominal() float64 {
	if t.NominalFPS > 0 {
		return t.NominalFPS
	}
	return timecode.DefaultFPS
}

// DetectKind guesses the flavor of a normalized table from its schema:
// transmitter logs name files, recorder logs name scenes and takes.
func DetectKind(t *Table) Kind {
	if t.HasColumn(ColumnFileName) && !t.HasColumn(ColumnScene) {
		return KindTransmitter
	}
	return KindRecorder
}
