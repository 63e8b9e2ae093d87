// Package tracks discovers which recorder-log track columns carry real
// performer data and derives stable display names for them.
package tracks

import (
	"strings"

	"zmatch/internal/sessionlog"
)

// Index is the immutable outcome of track discovery for one recorder table.
// ActiveColumns and DisplayNames follow column discovery order; every active
// column maps to exactly one display name.
type Index struct {
	ActiveColumns []string
	DisplayNames  []string

	columnByDisplay map[string]string
}

// Column resolves a display name to its underlying column name. It also
// accepts a raw column name so CLI callers can pass either form.
func (ix Index) Column(display string) (string, bool) {
	if column, ok := ix.columnByDisplay[display]; ok {
		return column, true
	}
	for _, column := range ix.ActiveColumns {
		if column == display {
			return column, true
		}
	}
	return "", false
}

// Values collects the distinct non-empty values of one column in first-seen
// row order.
func Values(table *sessionlog.Table, column string) []string {
	var distinct []string
	seen := make(map[string]struct{})
	for row := 0; row < table.Len(); row++ {
		value := table.Value(row, column)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		distinct = append(distinct, value)
	}
	return distinct
}

// Discover scans a recorder table for candidate track columns (names starting
// with "Name" or "Track", excluding the literal "Tracks" column) and keeps
// the ones with at least one populated cell. A column owned by a single
// performer takes that performer's name as its display name; otherwise the
// raw column name is used, suffixed with the column name on collision.
func Discover(table *sessionlog.Table) Index {
	ix := Index{columnByDisplay: make(map[string]string)}
	for _, column := range table.Columns {
		if !isCandidate(column) {
			continue
		}
		values := Values(table, column)
		if len(values) == 0 {
			continue
		}
		display := column
		if len(values) == 1 {
			display = values[0]
		}
		if _, taken := ix.columnByDisplay[display]; taken {
			display = display + " (" + column + ")"
		}
		ix.ActiveColumns = append(ix.ActiveColumns, column)
		ix.DisplayNames = append(ix.DisplayNames, display)
		ix.columnByDisplay[display] = column
	}
	return ix
}

func isCandidate(column string) bool {
	if column == "Tracks" {
		return false
	}
	return strings.HasPrefix(column, "Name") || strings.HasPrefix(column, "Track")
}
