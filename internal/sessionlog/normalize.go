package sessionlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// headerMarker begins the tabular block; everything above it is metadata.
const headerMarker = "FileID"

// folderNameToken marks the metadata line carrying the sound-roll name.
const folderNameToken = "FolderName"

// ErrMalformedLog reports input with no parsable tabular block.
var ErrMalformedLog = errors.New("malformed log: no header line found")

// Normalize parses a raw log into a canonical Table. The reader's bytes are
// decoded as Latin-1. For recorder logs the FolderName metadata line supplies
// the session's sound roll; transmitter logs keep the placeholder.
func Normalize(r io.Reader, kind Kind) (*Table, error) {
	decoded, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(r))
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	lines := strings.Split(string(decoded), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}

	table := &Table{Kind: kind, Session: SessionPlaceholder}
	if kind == KindRecorder {
		table.Session = scanSessionTag(lines)
	}

	headerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, headerMarker) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrMalformedLog
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("parse log header: %w", err)
	}
	table.Columns = make([]string, len(header))
	for i, name := range header {
		table.Columns[i] = cleanCell(name)
	}

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse log row %d: %w", len(table.rows)+1, err)
		}
		row := make(map[string]string, len(table.Columns))
		for i, column := range table.Columns {
			if i < len(record) {
				row[column] = cleanCell(record[i])
			}
		}
		table.rows = append(table.rows, row)
	}
	return table, nil
}

// NormalizeFile opens and normalizes a log on disk.
func NormalizeFile(path string, kind Kind) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	return Normalize(f, kind)
}

// scanSessionTag extracts the sound roll from the first FolderName line. The
// token's remainder is stripped of '='/':' separators, and the first
// comma-separated segment wins.
func scanSessionTag(lines []string) string {
	for _, line := range lines {
		idx := strings.Index(line, folderNameToken)
		if idx < 0 {
			continue
		}
		rest := line[idx+len(folderNameToken):]
		rest = strings.NewReplacer("=", "", ":", "").Replace(rest)
		rest = strings.TrimSpace(rest)
		if segment := strings.TrimSpace(strings.SplitN(rest, ",", 2)[0]); segment != "" {
			return segment
		}
		return SessionPlaceholder
	}
	return SessionPlaceholder
}

// cleanCell trims surrounding quotes and whitespace and collapses the
// literal "nan" (any case) to empty, mirroring how the recorder hardware
// pads unused cells.
func cleanCell(value string) string {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"`)
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "nan") {
		return ""
	}
	return value
}
