package testsupport

import "strings"

// RecorderLog assembles a recorder log body: metadata lines, the FolderName
// line (when roll is non-empty), and a tabular block headed by FileID.
// Each row is a CSV line matching the header.
func RecorderLog(roll, header string, rows ...string) string {
	var b strings.Builder
	b.WriteString("Sound Device Take Log\r\n")
	if roll != "" {
		b.WriteString("FolderName=" + roll + ", Session Media\r\n")
	}
	b.WriteString("Created By Recorder Firmware 4.52\r\n")
	b.WriteString(header + "\r\n")
	for _, row := range rows {
		b.WriteString(row + "\r\n")
	}
	return b.String()
}

// TransmitterLog assembles a transmitter log body with a tabular block headed
// by FileID and no session metadata.
func TransmitterLog(header string, rows ...string) string {
	var b strings.Builder
	b.WriteString("Transmitter File Export\r\n")
	b.WriteString(header + "\r\n")
	for _, row := range rows {
		b.WriteString(row + "\r\n")
	}
	return b.String()
}
