// Package report renders the per-commit sound report.
//
// The sink is an external collaborator from the matching engine's point of
// view: callers hand it the matched rows and a destination, and a failed
// report must never block the file copies it describes. Callers log and
// swallow sink errors.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"zmatch/internal/matching"
	"zmatch/internal/sessionlog"
)

// ErrUnavailable classifies sink failures for callers that want to log a
// uniform "no report produced" message.
var ErrUnavailable = errors.New("report sink unavailable")

// Sink receives the final matched rows and produces one tabular artifact.
// Both source tables are available so sinks can surface fields from either
// side of a match.
type Sink interface {
	Write(destDir, sessionLabel string, matches []matching.Match, rec, tx *sessionlog.Table) error
}

// TextSink renders the report as a plain-text table named after the session
// label inside the destination folder.
type TextSink struct{}

// Write renders one row per match: new filename, original filename,
// transmitter timecode, transmitter userbits, and the offset in seconds.
func (TextSink) Write(destDir, sessionLabel string, matches []matching.Match, _, tx *sessionlog.Table) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Sound Report for %q", sessionLabel)
	tw.AppendHeader(table.Row{"New Filename", "Old Filename", "Transmitter TC", "Userbits", "Offset"})
	for _, match := range matches {
		tw.AppendRow(table.Row{
			match.NewFilename,
			match.OriginalFilename,
			tx.TimeCode(match.TransmitterRow),
			tx.UserBits(match.TransmitterRow),
			fmt.Sprintf("%.2fs", match.OffsetSeconds),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignCenter},
		{Number: 4, Align: text.AlignCenter},
		{Number: 5, Align: text.AlignRight},
	})

	path := filepath.Join(destDir, sessionLabel+".txt")
	if err := os.WriteFile(path, []byte(tw.Render()+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrUnavailable, path, err)
	}
	return nil
}
