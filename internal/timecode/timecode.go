package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultFPS is the nominal frame rate assumed when a log row carries no
// usable FrameRate value.
const DefaultFPS = 23.98

// ErrUnparsable marks timecode text that does not split into four numeric
// fields.
var ErrUnparsable = errors.New("unparsable timecode")

func splitFields(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ':' || r == ';' || r == '.'
	})
}

// Parse converts a timecode string into total seconds at the given frame
// rate. The input must contain exactly four numeric fields (hours, minutes,
// seconds, frames); fps must be greater than zero.
func Parse(text string, fps float64) (float64, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("frame rate must be positive, got %v", fps)
	}
	fields := splitFields(strings.TrimSpace(text))
	if len(fields) != 4 {
		return 0, fmt.Errorf("%w: %q has %d fields, want 4", ErrUnparsable, text, len(fields))
	}
	values := make([]float64, 4)
	for i, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q field %d is not numeric", ErrUnparsable, text, i+1)
		}
		values[i] = value
	}
	return values[0]*3600 + values[1]*60 + values[2] + values[3]/fps, nil
}

// ToSeconds is the fail-soft form of Parse: malformed input converts to 0.0
// instead of an error. A zero result for bad input means such rows compare
// as t=0, which can over-match; callers wanting to warn about that should
// use Parse and count failures.
func ToSeconds(text string, fps float64) float64 {
	seconds, err := Parse(text, fps)
	if err != nil {
		return 0
	}
	return seconds
}
