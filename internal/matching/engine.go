package matching

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"zmatch/internal/sessionlog"
	"zmatch/internal/timecode"
)

// DefaultTolerance is the timecode proximity window, in whole seconds, used
// when the operator does not choose one.
const DefaultTolerance = 3.0

// ErrNoRowsSelected reports a match attempt with an empty recorder selection.
var ErrNoRowsSelected = errors.New("no recorder rows selected")

// Match is one accepted recorder/transmitter pair. Row content is referenced
// by index into the source tables; only the fields needed for renaming and
// reporting are materialized.
type Match struct {
	RecorderRow    int
	TransmitterRow int

	NewFilename      string
	OriginalFilename string
	OffsetSeconds    float64
	FPSMismatch      bool
	FPSRecorder      float64
	FPSTransmitter   float64
}

// Stats summarizes one engine run. The timecode conversion is fail-soft
// (malformed timecodes compare as t=0), so the unparsable counts exist to
// let the operator know when that leniency was exercised.
type Stats struct {
	RecorderUnparsable    int
	TransmitterUnparsable int
	FPSMismatches         int
}

// Find joins the selected recorder rows against every transmitter row.
// selected holds recorder row indices the operator kept; trackColumn may be
// empty ("no track selected"), in which case the track segment of each new
// filename is empty. tolerance is in seconds and must not be negative.
func Find(rec, tx *sessionlog.Table, selected []int, trackColumn string, tolerance float64) ([]Match, Stats, error) {
	var stats Stats
	if len(selected) == 0 {
		return nil, stats, ErrNoRowsSelected
	}
	if tolerance < 0 {
		return nil, stats, fmt.Errorf("tolerance must not be negative, got %v", tolerance)
	}

	// Transmitter seconds depend only on the transmitter row, so convert
	// once up front and remember which rows failed to parse.
	txSeconds := make([]float64, tx.Len())
	for i := 0; i < tx.Len(); i++ {
		seconds, err := timecode.Parse(tx.TimeCode(i), tx.FrameRate(i))
		if err != nil {
			stats.TransmitterUnparsable++
			seconds = 0
		}
		txSeconds[i] = seconds
	}

	var matches []Match
	for _, recRow := range selected {
		fpsRec := rec.FrameRate(recRow)
		recSeconds, err := timecode.Parse(rec.TimeCode(recRow), fpsRec)
		if err != nil {
			stats.RecorderUnparsable++
			recSeconds = 0
		}
		userBits := rec.UserBits(recRow)
		trackValue := ""
		if trackColumn != "" {
			trackValue = rec.Value(recRow, trackColumn)
		}

		for txRow := 0; txRow < tx.Len(); txRow++ {
			if tx.UserBits(txRow) != userBits {
				continue
			}
			offset := math.Abs(recSeconds - txSeconds[txRow])
			if offset > tolerance {
				continue
			}
			fpsTx := tx.FrameRate(txRow)
			original := tx.FileName(txRow)
			match := Match{
				RecorderRow:      recRow,
				TransmitterRow:   txRow,
				NewFilename:      TargetFilename(rec.Scene(recRow), rec.Take(recRow), trackValue, original),
				OriginalFilename: original,
				OffsetSeconds:    offset,
				FPSMismatch:      fpsRec != fpsTx,
				FPSRecorder:      fpsRec,
				FPSTransmitter:   fpsTx,
			}
			if match.FPSMismatch {
				stats.FPSMismatches++
			}
			matches = append(matches, match)
		}
	}
	return matches, stats, nil
}

// TargetFilename synthesizes the scene/take naming convention, keeping the
// original extension verbatim (dot and case included). An empty track value
// still contributes its empty segment.
func TargetFilename(scene, take, trackValue, originalFilename string) string {
	return fmt.Sprintf("%s-T%s-%s%s", scene, take, trackValue, filepath.Ext(originalFilename))
}
