// Package sessionlog normalizes the delimited-text logs produced by field
// recorders and wireless transmitters into a canonical tabular form.
//
// Both log flavors bury their tabular block under arbitrary metadata lines;
// the block starts at the first line containing the "FileID" marker. Recorder
// logs additionally carry a FolderName line that names the sound roll for the
// session. Hardware writes these files in Latin-1, so input is decoded from
// ISO 8859-1 before parsing.
//
// A normalized Table is an append-only arena: rows are addressed by position
// and never mutated after construction, so downstream components can refer
// back to rows with plain integer handles.
package sessionlog
