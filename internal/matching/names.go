package matching

import (
	"strings"

	"zmatch/internal/sessionlog"
)

// TrackValues collects the distinct non-empty values the matched recorder
// rows carry in trackColumn, in first-seen match order.
func TrackValues(rec *sessionlog.Table, matches []Match, trackColumn string) []string {
	if trackColumn == "" {
		return nil
	}
	var values []string
	seen := make(map[string]struct{})
	for _, match := range matches {
		value := strings.TrimSpace(rec.Value(match.RecorderRow, trackColumn))
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}

// FolderName derives the destination folder for a commit:
// "SR{sessionTag}_{dash-joined track values}", with every rune outside
// [A-Za-z0-9_-] in the joined segment replaced by '-'. With no track values
// the segment falls back to "Unknown".
func FolderName(sessionTag string, trackValues []string) string {
	segment := strings.Join(trackValues, "-")
	if segment == "" {
		segment = "Unknown"
	}
	return "SR" + sessionTag + "_" + sanitizeSegment(segment)
}

func sanitizeSegment(segment string) string {
	var b strings.Builder
	b.Grow(len(segment))
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
