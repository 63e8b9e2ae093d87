package main

import (
	"fmt"
	"strconv"
	"strings"

	"zmatch/internal/matching"
	"zmatch/internal/sessionlog"
	"zmatch/internal/tracks"
)

// parseSkipList parses the --skip flag value, a comma-separated list of
// recorder row indices to exclude from matching.
func parseSkipList(value string) (map[int]struct{}, error) {
	skipped := make(map[int]struct{})
	if strings.TrimSpace(value) == "" {
		return skipped, nil
	}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		index, err := strconv.Atoi(part)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("invalid row index %q in skip list", part)
		}
		skipped[index] = struct{}{}
	}
	return skipped, nil
}

// selectRows returns every recorder row index not present in the skip set.
func selectRows(total int, skipped map[int]struct{}) []int {
	selected := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if _, ok := skipped[i]; ok {
			continue
		}
		selected = append(selected, i)
	}
	return selected
}

// matchInputs carries everything the match and commit commands share: the
// normalized logs, the resolved track column, and the engine output.
type matchInputs struct {
	Recorder    *sessionlog.Table
	Transmitter *sessionlog.Table
	TrackColumn string
	Tolerance   float64
	Matches     []matching.Match
	Stats       matching.Stats
}

// runMatch loads both logs and runs the engine once. track may be a display
// name, a raw column name, or empty for no track segment; skip holds
// excluded recorder row indices; nominalFPS is the configured fallback rate
// for rows without a usable FrameRate value.
func runMatch(recorderPath, transmitterPath, track string, tolerance, nominalFPS float64, skipped map[int]struct{}) (*matchInputs, error) {
	rec, err := sessionlog.NormalizeFile(recorderPath, sessionlog.KindRecorder)
	if err != nil {
		return nil, fmt.Errorf("recorder log: %w", err)
	}
	tx, err := sessionlog.NormalizeFile(transmitterPath, sessionlog.KindTransmitter)
	if err != nil {
		return nil, fmt.Errorf("transmitter log: %w", err)
	}
	rec.NominalFPS = nominalFPS
	tx.NominalFPS = nominalFPS

	trackColumn := ""
	if track != "" {
		index := tracks.Discover(rec)
		column, ok := index.Column(track)
		if !ok {
			return nil, fmt.Errorf("unknown track %q (run \"zmatch tracks\" to list them)", track)
		}
		trackColumn = column
	}

	matches, stats, err := matching.Find(rec, tx, selectRows(rec.Len(), skipped), trackColumn, tolerance)
	if err != nil {
		return nil, err
	}

	return &matchInputs{
		Recorder:    rec,
		Transmitter: tx,
		TrackColumn: trackColumn,
		Tolerance:   tolerance,
		Matches:     matches,
		Stats:       stats,
	}, nil
}

func formatFPS(fps float64) string {
	return strconv.FormatFloat(fps, 'f', -1, 64)
}

func formatOffset(seconds float64) string {
	return fmt.Sprintf("%.2fs", seconds)
}
